package infer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modelserve/go-infer/inference"
)

func TestBuildInferRequestDefaults(t *testing.T) {
	in := byteInput("INPUT0", []byte{1, 2, 3})
	req := buildInferRequest("simple", []*InferInput{in}, collectInferOptions(nil))

	require.Equal(t, "simple", req.GetModelName())
	require.Empty(t, req.GetModelVersion())
	require.Empty(t, req.GetId())
	require.Nil(t, req.GetParameters())
	require.Empty(t, req.GetOutputs())
	require.Len(t, req.GetInputs(), 1)
	require.Equal(t, []byte{1, 2, 3}, req.GetInputs()[0].GetContents().GetRawContents())
}

func TestBuildInferRequestVersionAndID(t *testing.T) {
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithModelVersion("2"),
		WithRequestID("req-1"),
	}))

	require.Equal(t, "2", req.GetModelVersion())
	require.Equal(t, "req-1", req.GetId())
}

func TestBuildInferRequestSequenceParameters(t *testing.T) {
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithSequence(42, true, false),
	}))

	params := req.GetParameters()
	require.Len(t, params, 3)
	require.Equal(t, int64(42), params["sequence_id"].GetInt64Param())
	require.True(t, params["sequence_start"].GetBoolParam())
	require.False(t, params["sequence_end"].GetBoolParam())
}

func TestBuildInferRequestZeroSequenceIgnored(t *testing.T) {
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithSequence(0, true, true),
	}))

	require.Nil(t, req.GetParameters())
}

func TestBuildInferRequestPriorityAndTimeout(t *testing.T) {
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithPriority(3),
		WithTimeout(1500 * time.Millisecond),
	}))

	params := req.GetParameters()
	require.Len(t, params, 2)
	require.Equal(t, int64(3), params["priority"].GetInt64Param())
	require.Equal(t, int64(1500000), params["timeout"].GetInt64Param())
}

func TestBuildInferRequestZeroPriorityOmitted(t *testing.T) {
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithPriority(0),
	}))

	require.Nil(t, req.GetParameters())
}

func TestBuildInferRequestOutputs(t *testing.T) {
	out := NewInferRequestedOutput("OUTPUT0").SetClassificationCount(5)
	req := buildInferRequest("simple", nil, collectInferOptions([]InferOption{
		WithOutputs(out),
	}))

	require.Len(t, req.GetOutputs(), 1)
	require.Equal(t, "OUTPUT0", req.GetOutputs()[0].GetName())
	require.Equal(t, int64(5), req.GetOutputs()[0].GetParameters()["classification"].GetInt64Param())
}

func TestInferInputWithoutDataHasNoContents(t *testing.T) {
	in := NewInferInput("INPUT0", "FP32", []int64{1, 3})
	req := buildInferRequest("simple", []*InferInput{in}, collectInferOptions(nil))

	require.Nil(t, req.GetInputs()[0].GetContents())
}

func TestInferInputParameters(t *testing.T) {
	in := NewInferInput("INPUT0", "FP32", []int64{4}).
		SetParameter("format", inference.StringParameter("row-major"))
	req := buildInferRequest("simple", []*InferInput{in}, collectInferOptions(nil))

	require.Equal(t, "row-major", req.GetInputs()[0].GetParameters()["format"].GetStringParam())
}
