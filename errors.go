package infer

import (
	"fmt"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/status"
)

// ServerError is the error type returned for every failed interaction with
// the inference server, whether the failure happened in transport or was
// reported in-band by the server.
type ServerError struct {
	// Msg is the human readable message describing the failure.
	Msg string
	// Status is the canonical gRPC code string for transport failures. It
	// is empty for errors the server reported in-band on a stream.
	Status string
	// DebugDetails carries the textual form of the full status proto when
	// one is available.
	DebugDetails string
}

func (e *ServerError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("[%s] %s", e.Status, e.Msg)
	}
	return e.Msg
}

// grpcError maps a failed RPC to a *ServerError. Every call site that can
// observe a transport failure funnels through here.
func grpcError(err error) *ServerError {
	st := status.Convert(err)
	return &ServerError{
		Msg:          st.Message(),
		Status:       st.Code().String(),
		DebugDetails: proto.CompactTextString(st.Proto()),
	}
}

// streamError wraps a non-empty error_message received on a response
// stream. No status code is available for in-band errors.
func streamError(msg string) *ServerError {
	return &ServerError{Msg: msg}
}
