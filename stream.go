package infer

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Workiva/go-datastructures/queue"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/metadata"

	"github.com/modelserve/go-infer/inference"
)

type streamState int

const (
	streamUninitialized streamState = iota
	streamActive
	streamClosing
	streamClosed
)

// sentinel ends the outbound half of a session when it reaches the front
// of the request queue.
type sentinel struct{}

// InferStream is a bidirectional streaming inference session. A session is
// created detached from any connection; the stream is opened on the first
// StreamInfer call and stays open until Close or a transport failure.
//
// Requests are sent in enqueue order. Responses are delivered to the
// session callback in the order the server produces them; no correlation
// between requests and responses is promised. Callers that need to match
// them up should set an id with WithRequestID and read it back from the
// result.
type InferStream struct {
	id       string
	callback InferCallback
	log      zerolog.Logger

	mu      sync.Mutex
	state   streamState
	started bool

	client   *Client
	stream   inference.GRPCInferenceService_ModelStreamInferClient
	cancel   context.CancelFunc
	requests *queue.Queue
	recvDone chan struct{}
}

// StreamOption configures an InferStream.
type StreamOption func(*InferStream)

// WithStreamLogger sets the logger for the session goroutines.
func WithStreamLogger(lg zerolog.Logger) StreamOption {
	return func(s *InferStream) {
		s.log = lg
	}
}

// NewInferStream creates a detached streaming session. No network activity
// happens until the session is first used with Client.StreamInfer. The
// callback is invoked from the session's receive goroutine, once per
// response.
func NewInferStream(callback InferCallback, opts ...StreamOption) *InferStream {
	s := &InferStream{
		id:       uuid.New().String(),
		callback: callback,
		log:      zerolog.Nop(),
		requests: queue.New(16),
		recvDone: make(chan struct{}),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// StreamInfer enqueues an inference request on the session and returns
// without waiting for a response. On the first call the stream is opened
// over this client; that call's context governs the whole session, so
// callers should not pass a request-scoped deadline. A session that failed
// to open stays uninitialized and may be retried.
//
// Enqueueing on a closing or closed session fails synchronously; it never
// surfaces through the callback.
func (c *Client) StreamInfer(ctx context.Context, s *InferStream, modelName string, inputs []*InferInput, opts ...InferOption) error {
	o := collectInferOptions(opts)
	req := buildInferRequest(modelName, inputs, o)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case streamUninitialized:
		if err := s.open(ctx, c, o.headers); err != nil {
			return err
		}
	case streamActive:
		if s.client != c {
			return errors.New("infer: stream session belongs to a different client")
		}
	default:
		return errors.New("infer: stream session is closed")
	}

	if err := s.requests.Put(req); err != nil {
		return errors.New("infer: stream session is closed")
	}
	return nil
}

// open establishes the stream. Callers hold s.mu, so concurrent first
// uses initialize the session exactly once.
func (s *InferStream) open(ctx context.Context, c *Client, headers map[string]string) error {
	if err := c.register(s); err != nil {
		return err
	}

	sctx, cancel := context.WithCancel(c.log.WithContext(ctx))
	if len(headers) > 0 {
		kv := make([]string, 0, 2*len(headers))
		for k, v := range headers {
			kv = append(kv, k, v)
		}
		sctx = metadata.AppendToOutgoingContext(sctx, kv...)
	}

	stream, err := c.rpc.ModelStreamInfer(sctx)
	if err != nil {
		cancel()
		c.unregister(s)
		return grpcError(err)
	}

	s.client = c
	s.stream = stream
	s.cancel = cancel
	s.log = s.log.With().Str("stream_id", s.id).Logger()
	s.state = streamActive
	s.started = true

	go s.sendLoop()
	go s.recvLoop()

	s.log.Debug().Msg("stream session opened")
	return nil
}

// sendLoop drains the request queue onto the wire until the sentinel or a
// send failure. Send failures are left for the receive loop to observe
// and report, so the session produces a single error.
func (s *InferStream) sendLoop() {
	for {
		items, err := s.requests.Get(1)
		if err != nil {
			return
		}
		if _, done := items[0].(sentinel); done {
			if err := s.stream.CloseSend(); err != nil {
				s.log.Debug().Err(err).Msg("closing send side")
			}
			return
		}

		req := items[0].(*inference.ModelInferRequest)
		if err := s.stream.Send(req); err != nil {
			s.log.Debug().Err(err).Msg("stream send failed")
			return
		}
	}
}

// recvLoop dispatches every server response to the session callback. It is
// the only goroutine that invokes the callback, which gives the delivery
// its ordering and exactly-once properties.
func (s *InferStream) recvLoop() {
	defer close(s.recvDone)

	for {
		resp, err := s.stream.Recv()
		if err == io.EOF {
			// A server that ends the stream on its own leaves the session
			// unusable; shut it down so later enqueues fail fast instead of
			// being dropped by a failing send.
			s.mu.Lock()
			ended := s.state == streamActive
			if ended {
				s.state = streamClosed
			}
			s.mu.Unlock()
			if ended {
				s.requests.Dispose()
				s.cancel()
				s.client.unregister(s)
				s.log.Warn().Msg("server ended the stream")
			}
			return
		}
		if err != nil {
			s.abort()
			s.callback(nil, grpcError(err))
			return
		}

		if msg := resp.GetErrorMessage(); msg != "" {
			s.callback(nil, streamError(msg))
			continue
		}
		s.callback(newInferResult(resp.GetInferResponse()), nil)
	}
}

// abort tears the session down after a transport failure. Later enqueues
// fail fast and the send goroutine is released.
func (s *InferStream) abort() {
	s.mu.Lock()
	s.state = streamClosed
	s.mu.Unlock()

	s.requests.Dispose()
	s.cancel()
	s.client.unregister(s)
	s.log.Debug().Msg("stream session aborted")
}

// Close drains the session: requests already enqueued are still sent, the
// send half closes, and Close blocks until the server has finished
// responding and the receive goroutine exited. No callback runs after
// Close returns. Closing a session that was never used, or closing twice,
// is a no-op.
func (s *InferStream) Close() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	if s.state == streamActive {
		s.state = streamClosing
		// The put only fails when a transport failure disposed the queue,
		// in which case the receive goroutine is already on its way out.
		_ = s.requests.Put(sentinel{})
	}
	s.mu.Unlock()

	// Always join the receive goroutine once the session has started, even
	// when a failure already moved the state on: the final error callback
	// must not outlive Close.
	<-s.recvDone

	s.mu.Lock()
	s.state = streamClosed
	s.mu.Unlock()

	s.cancel()
	s.requests.Dispose()
	s.client.unregister(s)
	s.log.Debug().Msg("stream session closed")
	return nil
}
