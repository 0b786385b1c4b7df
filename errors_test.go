package infer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServerErrorRendering(t *testing.T) {
	withStatus := &ServerError{Msg: "model not found", Status: "NotFound"}
	require.Equal(t, "[NotFound] model not found", withStatus.Error())

	inBand := &ServerError{Msg: "inference failed"}
	require.Equal(t, "inference failed", inBand.Error())
}

func TestGRPCErrorMapping(t *testing.T) {
	err := status.Error(codes.Unavailable, "connection reset")

	serr := grpcError(err)
	require.Equal(t, "connection reset", serr.Msg)
	require.Equal(t, "Unavailable", serr.Status)
	require.Contains(t, serr.DebugDetails, "connection reset")
}

func TestGRPCErrorMappingPlainError(t *testing.T) {
	serr := grpcError(plainError{})

	// Non-status errors come back as code Unknown.
	require.Equal(t, "Unknown", serr.Status)
	require.Equal(t, "some transport problem", serr.Msg)
}

type plainError struct{}

func (plainError) Error() string { return "some transport problem" }

func TestStreamError(t *testing.T) {
	serr := streamError("failed to allocate output")
	require.Equal(t, "failed to allocate output", serr.Msg)
	require.Empty(t, serr.Status)
	require.Equal(t, "failed to allocate output", serr.Error())
}
