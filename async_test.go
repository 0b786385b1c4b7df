package infer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modelserve/go-infer/inference"
)

func TestInferAsyncSuccess(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	done := make(chan *InferResult, 1)
	err := client.InferAsync(context.Background(), "simple", []*InferInput{byteInput("INPUT0", []byte{9})},
		func(result *InferResult, serr *ServerError) {
			require.Nil(t, serr)
			done <- result
		},
		WithRequestID("async-1"))
	require.NoError(t, err)

	select {
	case result := <-done:
		require.Equal(t, "async-1", result.ID())
		raw, rerr := result.RawOutput("INPUT0")
		require.NoError(t, rerr)
		require.Equal(t, []byte{9}, raw)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async result")
	}
}

func TestInferAsyncFailure(t *testing.T) {
	fake := &fakeInferenceServer{
		inferFn: func(*inference.ModelInferRequest) (*inference.ModelInferResponse, error) {
			return nil, status.Error(codes.NotFound, "no such model")
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	done := make(chan *ServerError, 1)
	err := client.InferAsync(context.Background(), "missing", nil,
		func(result *InferResult, serr *ServerError) {
			require.Nil(t, result)
			done <- serr
		})
	require.NoError(t, err)

	select {
	case serr := <-done:
		require.Equal(t, "NotFound", serr.Status)
		require.Equal(t, "no such model", serr.Msg)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async error")
	}
}

func TestInferAsyncCallbackRunsExactlyOnce(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	var calls int64
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			return client.InferAsync(context.Background(), "simple",
				[]*InferInput{byteInput("INPUT0", []byte{byte(i)})},
				func(*InferResult, *ServerError) {
					atomic.AddInt64(&calls, 1)
				})
		})
	}
	require.NoError(t, g.Wait())

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&calls) == 16
	}, 5*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int64(16), atomic.LoadInt64(&calls))
}

func TestInferAsyncOnClosedClient(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()
	require.NoError(t, client.Close())

	err := client.InferAsync(context.Background(), "simple", nil,
		func(*InferResult, *ServerError) {
			t.Error("callback must not run for a rejected submission")
		})
	require.Error(t, err)
	require.IsType(t, &ServerError{}, err)

	time.Sleep(50 * time.Millisecond)
}

func TestInferAsyncNilCallback(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	require.Error(t, client.InferAsync(context.Background(), "simple", nil, nil))
}
