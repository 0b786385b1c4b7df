// Package infer is a gRPC client for a model inference server.
//
// It supports three invocation modes: blocking inference with Infer,
// callback-based asynchronous inference with InferAsync, and streaming
// inference over a long-lived bidirectional stream through an
// InferStream session.
package infer

//go:generate protoc ./inference/inference.proto --go_out=plugins=grpc,paths=source_relative:.
