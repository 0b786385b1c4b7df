package infer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modelserve/go-infer/inference"
)

// collector funnels stream callbacks into channels the test can wait on.
type collector struct {
	results chan *InferResult
	errors  chan *ServerError
	calls   int64
}

func newCollector() *collector {
	return &collector{
		results: make(chan *InferResult, 64),
		errors:  make(chan *ServerError, 64),
	}
}

func (c *collector) callback(result *InferResult, err *ServerError) {
	atomic.AddInt64(&c.calls, 1)
	if err != nil {
		c.errors <- err
		return
	}
	c.results <- result
}

func (c *collector) callCount() int64 {
	return atomic.LoadInt64(&c.calls)
}

func (c *collector) waitResult(t *testing.T) *InferResult {
	t.Helper()
	select {
	case r := <-c.results:
		return r
	case err := <-c.errors:
		t.Fatalf("expected a result, got error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a stream result")
	}
	return nil
}

func (c *collector) waitError(t *testing.T) *ServerError {
	t.Helper()
	select {
	case err := <-c.errors:
		return err
	case r := <-c.results:
		t.Fatalf("expected an error, got result for model %s", r.ModelName())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a stream error")
	}
	return nil
}

func TestStreamInferDeliversResponses(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)

	for i := 0; i < 3; i++ {
		in := byteInput("INPUT0", []byte{byte(i)})
		err := client.StreamInfer(context.Background(), stream, "simple", []*InferInput{in},
			WithRequestID(fmt.Sprintf("req-%d", i)))
		require.NoError(t, err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		r := col.waitResult(t)
		seen[r.ID()] = true
	}
	require.Len(t, seen, 3)
	for i := 0; i < 3; i++ {
		require.True(t, seen[fmt.Sprintf("req-%d", i)])
	}

	require.NoError(t, stream.Close())
	require.Equal(t, 1, fake.streamCount())

	// Requests travel in enqueue order.
	require.Equal(t, []string{"req-0", "req-1", "req-2"}, fake.receivedOrder())
}

func TestStreamInferInBandError(t *testing.T) {
	fake := &fakeInferenceServer{
		streamFn: func(stream inference.GRPCInferenceService_ModelStreamInferServer) error {
			for {
				if _, err := stream.Recv(); err != nil {
					return nil
				}
				if err := stream.Send(&inference.ModelStreamInferResponse{
					ErrorMessage: "model exploded",
				}); err != nil {
					return err
				}
			}
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)

	err := client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})})
	require.NoError(t, err)

	serr := col.waitError(t)
	require.Equal(t, "model exploded", serr.Msg)
	require.Empty(t, serr.Status)

	require.NoError(t, stream.Close())
}

func TestStreamTransportFailure(t *testing.T) {
	fake := &fakeInferenceServer{
		streamFn: func(stream inference.GRPCInferenceService_ModelStreamInferServer) error {
			if _, err := stream.Recv(); err != nil {
				return err
			}
			return status.Error(codes.Internal, "stream torn down")
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)

	err := client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})})
	require.NoError(t, err)

	serr := col.waitError(t)
	require.Equal(t, "Internal", serr.Status)
	require.Equal(t, "stream torn down", serr.Msg)

	// The session is dead: later enqueues fail synchronously and the
	// failure callback never repeats.
	require.Error(t, client.StreamInfer(context.Background(), stream, "simple", nil))

	calls := col.callCount()
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, calls, col.callCount())

	require.NoError(t, stream.Close())
}

func TestStreamCloseWaitsForFinalErrorCallback(t *testing.T) {
	fake := &fakeInferenceServer{
		streamFn: func(stream inference.GRPCInferenceService_ModelStreamInferServer) error {
			if _, err := stream.Recv(); err != nil {
				return err
			}
			return status.Error(codes.Unavailable, "going away")
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	entered := make(chan struct{})
	release := make(chan struct{})
	stream := NewInferStream(func(result *InferResult, err *ServerError) {
		close(entered)
		<-release
	})

	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))

	// The failure callback is now running and parked.
	<-entered

	closed := make(chan struct{})
	go func() {
		_ = stream.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned while the failure callback was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return after the callback finished")
	}
}

func TestStreamServerEndFailsFast(t *testing.T) {
	fake := &fakeInferenceServer{
		streamFn: func(stream inference.GRPCInferenceService_ModelStreamInferServer) error {
			req, err := stream.Recv()
			if err != nil {
				return err
			}
			// Answer once, then end the stream without being asked to.
			return stream.Send(&inference.ModelStreamInferResponse{InferResponse: echoResponse(req)})
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)
	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))
	col.waitResult(t)

	// Once the end of the stream is observed, enqueues are rejected
	// instead of being dropped on a dead send half.
	require.Eventually(t, func() bool {
		return client.StreamInfer(context.Background(), stream, "simple", nil) != nil
	}, 5*time.Second, 10*time.Millisecond)

	calls := col.callCount()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, calls, col.callCount())

	require.NoError(t, stream.Close())
}

func TestStreamCloseIsIdempotent(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	// Never used: closing is a no-op.
	unused := NewInferStream(func(*InferResult, *ServerError) {})
	require.NoError(t, unused.Close())
	require.NoError(t, unused.Close())

	col := newCollector()
	stream := NewInferStream(col.callback)
	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))
	col.waitResult(t)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())
}

func TestStreamEnqueueAfterCloseFailsFast(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)
	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))
	col.waitResult(t)
	require.NoError(t, stream.Close())

	err := client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{2})})
	require.Error(t, err)

	calls := col.callCount()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, calls, col.callCount())
}

func TestStreamNoCallbacksAfterClose(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	var mu sync.Mutex
	closed := false
	var lateCallback bool

	stream := NewInferStream(func(result *InferResult, err *ServerError) {
		mu.Lock()
		if closed {
			lateCallback = true
		}
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{byte(i)})}))
	}

	require.NoError(t, stream.Close())
	mu.Lock()
	closed = true
	mu.Unlock()

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.False(t, lateCallback)
}

func TestStreamConcurrentFirstUseOpensOnce(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			return client.StreamInfer(context.Background(), stream, "simple",
				[]*InferInput{byteInput("INPUT0", []byte{byte(i)})})
		})
	}
	require.NoError(t, g.Wait())

	for i := 0; i < 8; i++ {
		col.waitResult(t)
	}
	require.NoError(t, stream.Close())
	require.Equal(t, 1, fake.streamCount())
}

func TestStreamSessionBoundToOneClient(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	other, otherShutdown := newTestClient(t, &fakeInferenceServer{})
	defer otherShutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)
	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))
	col.waitResult(t)

	err := other.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{2})})
	require.Error(t, err)

	require.NoError(t, stream.Close())
}
