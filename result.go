package infer

import (
	"fmt"

	"github.com/golang/protobuf/jsonpb"

	"github.com/modelserve/go-infer/inference"
)

// InferResult wraps a single inference response.
type InferResult struct {
	response *inference.ModelInferResponse
}

func newInferResult(resp *inference.ModelInferResponse) *InferResult {
	return &InferResult{response: resp}
}

// Response returns the decoded wire response.
func (r *InferResult) Response() *inference.ModelInferResponse {
	return r.response
}

// ID returns the request id echoed back by the server, if one was set.
func (r *InferResult) ID() string {
	return r.response.GetId()
}

// ModelName returns the name of the model that produced the result.
func (r *InferResult) ModelName() string {
	return r.response.GetModelName()
}

// ModelVersion returns the version of the model that produced the result.
func (r *InferResult) ModelVersion() string {
	return r.response.GetModelVersion()
}

// Output returns the named output tensor.
func (r *InferResult) Output(name string) (*inference.ModelInferResponse_InferOutputTensor, error) {
	for _, out := range r.response.GetOutputs() {
		if out.GetName() == name {
			return out, nil
		}
	}
	return nil, fmt.Errorf("no output tensor named %q in response", name)
}

// RawOutput returns the raw contents of the named output tensor.
func (r *InferResult) RawOutput(name string) ([]byte, error) {
	out, err := r.Output(name)
	if err != nil {
		return nil, err
	}
	return out.GetContents().GetRawContents(), nil
}

// JSON renders the response in protobuf JSON form, mostly useful for
// debugging.
func (r *InferResult) JSON() (string, error) {
	m := jsonpb.Marshaler{EmitDefaults: false}
	return m.MarshalToString(r.response)
}
