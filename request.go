package infer

import (
	"time"

	"github.com/modelserve/go-infer/inference"
)

// InferInput describes a single named input tensor for an inference
// request. The tensor contents are carried as raw bytes in row-major
// order; interpreting them is up to the caller and the model.
type InferInput struct {
	name     string
	datatype string
	shape    []int64
	raw      []byte
	params   map[string]*inference.InferParameter
}

// NewInferInput creates an input tensor with the given name, datatype
// string and shape.
func NewInferInput(name, datatype string, shape []int64) *InferInput {
	return &InferInput{
		name:     name,
		datatype: datatype,
		shape:    shape,
	}
}

func (i *InferInput) Name() string   { return i.name }
func (i *InferInput) Shape() []int64 { return i.shape }

// SetRaw sets the tensor contents from a raw byte buffer.
func (i *InferInput) SetRaw(data []byte) *InferInput {
	i.raw = data
	return i
}

// SetParameter attaches an additional parameter to this input tensor.
func (i *InferInput) SetParameter(name string, value *inference.InferParameter) *InferInput {
	if i.params == nil {
		i.params = make(map[string]*inference.InferParameter)
	}
	i.params[name] = value
	return i
}

func (i *InferInput) proto() *inference.ModelInferRequest_InferInputTensor {
	t := &inference.ModelInferRequest_InferInputTensor{
		Name:       i.name,
		Datatype:   i.datatype,
		Shape:      i.shape,
		Parameters: i.params,
	}
	if i.raw != nil {
		t.Contents = &inference.InferTensorContents{RawContents: i.raw}
	}
	return t
}

// InferRequestedOutput names an output tensor that should be returned for
// an inference request.
type InferRequestedOutput struct {
	name   string
	params map[string]*inference.InferParameter
}

// NewInferRequestedOutput creates a requested output for the named tensor.
func NewInferRequestedOutput(name string) *InferRequestedOutput {
	return &InferRequestedOutput{name: name}
}

func (o *InferRequestedOutput) Name() string { return o.name }

// SetParameter attaches an additional parameter to this requested output.
func (o *InferRequestedOutput) SetParameter(name string, value *inference.InferParameter) *InferRequestedOutput {
	if o.params == nil {
		o.params = make(map[string]*inference.InferParameter)
	}
	o.params[name] = value
	return o
}

// SetClassificationCount requests the output as a classification result
// holding the top count entries.
func (o *InferRequestedOutput) SetClassificationCount(count int64) *InferRequestedOutput {
	return o.SetParameter("classification", inference.Int64Parameter(count))
}

func (o *InferRequestedOutput) proto() *inference.ModelInferRequest_InferRequestedOutputTensor {
	return &inference.ModelInferRequest_InferRequestedOutputTensor{
		Name:       o.name,
		Parameters: o.params,
	}
}

// InferOption customizes a single inference request.
type InferOption func(*inferOptions)

type inferOptions struct {
	modelVersion  string
	requestID     string
	outputs       []*InferRequestedOutput
	sequenceID    uint64
	sequenceStart bool
	sequenceEnd   bool
	priority      uint64
	timeout       time.Duration
	hasTimeout    bool
	headers       map[string]string
}

// WithModelVersion pins the request to a specific model version. When not
// given the server chooses a version based on its policy.
func WithModelVersion(version string) InferOption {
	return func(o *inferOptions) { o.modelVersion = version }
}

// WithRequestID sets an identifier for the request which the server
// echoes back in the response.
func WithRequestID(id string) InferOption {
	return func(o *inferOptions) { o.requestID = id }
}

// WithOutputs restricts the response to the given output tensors. When not
// given all outputs produced by the model are returned.
func WithOutputs(outputs ...*InferRequestedOutput) InferOption {
	return func(o *inferOptions) { o.outputs = outputs }
}

// WithSequence marks the request as part of the sequence identified by id,
// with start and end flagging the first and last request of the sequence.
// A zero id means the request is not part of a sequence and the flags are
// ignored.
func WithSequence(id uint64, start, end bool) InferOption {
	return func(o *inferOptions) {
		o.sequenceID = id
		o.sequenceStart = start
		o.sequenceEnd = end
	}
}

// WithPriority sets the priority of the request. Zero means the default
// priority level of the model.
func WithPriority(priority uint64) InferOption {
	return func(o *inferOptions) { o.priority = priority }
}

// WithTimeout sets the server-side timeout for handling the request.
func WithTimeout(timeout time.Duration) InferOption {
	return func(o *inferOptions) {
		o.timeout = timeout
		o.hasTimeout = true
	}
}

// WithHeaders attaches additional metadata to the outgoing call.
func WithHeaders(headers map[string]string) InferOption {
	return func(o *inferOptions) { o.headers = headers }
}

func collectInferOptions(opts []InferOption) inferOptions {
	var o inferOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// buildInferRequest assembles the wire request for a model and its inputs.
// Optional knobs are attached only when they differ from their defaults so
// the server never sees spurious parameters.
func buildInferRequest(modelName string, inputs []*InferInput, o inferOptions) *inference.ModelInferRequest {
	req := &inference.ModelInferRequest{
		ModelName:    modelName,
		ModelVersion: o.modelVersion,
	}
	if o.requestID != "" {
		req.Id = o.requestID
	}

	params := make(map[string]*inference.InferParameter)
	if o.sequenceID != 0 {
		params["sequence_id"] = inference.Int64Parameter(int64(o.sequenceID))
		params["sequence_start"] = inference.BoolParameter(o.sequenceStart)
		params["sequence_end"] = inference.BoolParameter(o.sequenceEnd)
	}
	if o.priority != 0 {
		params["priority"] = inference.Int64Parameter(int64(o.priority))
	}
	if o.hasTimeout {
		params["timeout"] = inference.Int64Parameter(o.timeout.Microseconds())
	}
	if len(params) > 0 {
		req.Parameters = params
	}

	for _, in := range inputs {
		req.Inputs = append(req.Inputs, in.proto())
	}
	for _, out := range o.outputs {
		req.Outputs = append(req.Outputs, out.proto())
	}
	return req
}
