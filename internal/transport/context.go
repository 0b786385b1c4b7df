package transport

import (
	"context"

	"github.com/segmentio/ksuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const reqIDHeader = "x-request-id"

type requestIDKey struct{}

// EnsureRequestID returns a context that carries a request id, generating
// a fresh one when the context does not have one yet.
func EnsureRequestID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestIDKey{}).(string); ok {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, ksuid.New().String())
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}

func withRequestIDMetadata(ctx context.Context) context.Context {
	ctx = EnsureRequestID(ctx)
	id, _ := RequestIDFromContext(ctx)
	return metadata.AppendToOutgoingContext(ctx, reqIDHeader, id)
}

// UnaryRequestIDInterceptor attaches the request id to the outgoing
// metadata of every unary call.
func UnaryRequestIDInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		return invoker(withRequestIDMetadata(ctx), method, req, reply, cc, opts...)
	}
}

// StreamRequestIDInterceptor attaches the request id to the outgoing
// metadata of every new stream.
func StreamRequestIDInterceptor() grpc.StreamClientInterceptor {
	return func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
		return streamer(withRequestIDMetadata(ctx), desc, cc, method, opts...)
	}
}
