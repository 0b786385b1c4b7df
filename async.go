package infer

import (
	"context"
	"errors"
)

// InferCallback receives the outcome of an asynchronous or streaming
// inference. Exactly one of result and err is non-nil.
type InferCallback func(result *InferResult, err *ServerError)

// InferAsync runs the inference on a background goroutine and returns
// immediately. The callback is invoked exactly once, never on the calling
// goroutine. When the client is already closed the submission fails
// synchronously and the callback never runs. Completion order across
// concurrent calls is not defined.
func (c *Client) InferAsync(ctx context.Context, modelName string, inputs []*InferInput, callback InferCallback, opts ...InferOption) error {
	if callback == nil {
		return errors.New("infer: callback must not be nil")
	}
	if c.isClosed() {
		return &ServerError{Msg: "client is closed"}
	}

	go func() {
		result, err := c.Infer(ctx, modelName, inputs, opts...)
		if err != nil {
			serr, ok := err.(*ServerError)
			if !ok {
				serr = &ServerError{Msg: err.Error()}
			}
			callback(nil, serr)
			return
		}
		callback(result, nil)
	}()
	return nil
}
