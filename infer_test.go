package infer

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/stretchr/testify/require"

	"github.com/modelserve/go-infer/inference"
)

const bufSize = 1024 * 1024

// fakeInferenceServer implements just enough of the service to exercise
// the client. Unary inference and the stream echo the request back unless
// a test installs its own behavior.
type fakeInferenceServer struct {
	inference.UnimplementedGRPCInferenceServiceServer

	mu            sync.Mutex
	inferCalls    int
	metadataCalls int
	streamsOpened int
	lastRequestID string
	streamRecvIDs []string

	inferFn  func(*inference.ModelInferRequest) (*inference.ModelInferResponse, error)
	streamFn func(inference.GRPCInferenceService_ModelStreamInferServer) error
}

func echoResponse(req *inference.ModelInferRequest) *inference.ModelInferResponse {
	resp := &inference.ModelInferResponse{
		ModelName:    req.GetModelName(),
		ModelVersion: req.GetModelVersion(),
		Id:           req.GetId(),
	}
	for _, in := range req.GetInputs() {
		resp.Outputs = append(resp.Outputs, &inference.ModelInferResponse_InferOutputTensor{
			Name:     in.GetName(),
			Datatype: in.GetDatatype(),
			Shape:    in.GetShape(),
			Contents: in.GetContents(),
		})
	}
	return resp
}

func (f *fakeInferenceServer) ServerLive(ctx context.Context, _ *inference.ServerLiveRequest) (*inference.ServerLiveResponse, error) {
	return &inference.ServerLiveResponse{Live: true}, nil
}

func (f *fakeInferenceServer) ServerReady(ctx context.Context, _ *inference.ServerReadyRequest) (*inference.ServerReadyResponse, error) {
	return &inference.ServerReadyResponse{Ready: true}, nil
}

func (f *fakeInferenceServer) ModelReady(ctx context.Context, req *inference.ModelReadyRequest) (*inference.ModelReadyResponse, error) {
	return &inference.ModelReadyResponse{Ready: req.GetName() != ""}, nil
}

func (f *fakeInferenceServer) ServerMetadata(ctx context.Context, _ *inference.ServerMetadataRequest) (*inference.ServerMetadataResponse, error) {
	return &inference.ServerMetadataResponse{Name: "fake-server", Version: "2.0", Extensions: []string{"model_repository"}}, nil
}

func (f *fakeInferenceServer) ModelMetadata(ctx context.Context, req *inference.ModelMetadataRequest) (*inference.ModelMetadataResponse, error) {
	f.mu.Lock()
	f.metadataCalls++
	f.mu.Unlock()
	return &inference.ModelMetadataResponse{
		Name:     req.GetName(),
		Versions: []string{"1"},
		Platform: "fake",
	}, nil
}

func (f *fakeInferenceServer) ModelConfig(ctx context.Context, req *inference.ModelConfigRequest) (*inference.ModelConfigResponse, error) {
	return &inference.ModelConfigResponse{
		Config: &inference.ModelConfig{Name: req.GetName(), Platform: "fake", MaxBatchSize: 8},
	}, nil
}

func (f *fakeInferenceServer) ModelStatistics(ctx context.Context, req *inference.ModelStatisticsRequest) (*inference.ModelStatisticsResponse, error) {
	return &inference.ModelStatisticsResponse{
		ModelStats: []*inference.ModelStatistics{
			{Name: req.GetName(), Version: "1", InferenceCount: 42, ExecutionCount: 21},
		},
	}, nil
}

func (f *fakeInferenceServer) RepositoryIndex(ctx context.Context, _ *inference.RepositoryIndexRequest) (*inference.RepositoryIndexResponse, error) {
	return &inference.RepositoryIndexResponse{
		Models: []*inference.RepositoryIndexResponse_ModelIndex{
			{Name: "simple", Version: "1", State: "READY"},
		},
	}, nil
}

func (f *fakeInferenceServer) RepositoryModelLoad(ctx context.Context, _ *inference.RepositoryModelLoadRequest) (*inference.RepositoryModelLoadResponse, error) {
	return &inference.RepositoryModelLoadResponse{}, nil
}

func (f *fakeInferenceServer) RepositoryModelUnload(ctx context.Context, _ *inference.RepositoryModelUnloadRequest) (*inference.RepositoryModelUnloadResponse, error) {
	return &inference.RepositoryModelUnloadResponse{}, nil
}

func (f *fakeInferenceServer) ModelInfer(ctx context.Context, req *inference.ModelInferRequest) (*inference.ModelInferResponse, error) {
	f.mu.Lock()
	f.inferCalls++
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get("x-request-id"); len(ids) > 0 {
			f.lastRequestID = ids[0]
		}
	}
	fn := f.inferFn
	f.mu.Unlock()

	if fn != nil {
		return fn(req)
	}
	return echoResponse(req), nil
}

func (f *fakeInferenceServer) ModelStreamInfer(stream inference.GRPCInferenceService_ModelStreamInferServer) error {
	f.mu.Lock()
	f.streamsOpened++
	fn := f.streamFn
	f.mu.Unlock()

	if fn != nil {
		return fn(stream)
	}
	for {
		req, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		f.mu.Lock()
		f.streamRecvIDs = append(f.streamRecvIDs, req.GetId())
		f.mu.Unlock()
		if err := stream.Send(&inference.ModelStreamInferResponse{InferResponse: echoResponse(req)}); err != nil {
			return err
		}
	}
}

func (f *fakeInferenceServer) receivedOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.streamRecvIDs...)
}

func (f *fakeInferenceServer) streamCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streamsOpened
}

// newTestClient serves the fake over an in-memory transport and connects a
// client to it. The returned shutdown closes both ends.
func newTestClient(t *testing.T, fake *fakeInferenceServer, opts ...Option) (*Client, func()) {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	srv := grpc.NewServer()
	inference.RegisterGRPCInferenceServiceServer(srv, fake)
	go func() {
		_ = srv.Serve(lis)
	}()

	dialer := func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}
	opts = append([]Option{
		WithInsecure(),
		WithDialOptions(grpc.WithContextDialer(dialer)),
	}, opts...)

	client, err := New(context.Background(), "bufnet", opts...)
	require.NoError(t, err)

	return client, func() {
		_ = client.Close()
		srv.Stop()
	}
}

func byteInput(name string, data []byte) *InferInput {
	return NewInferInput(name, "UINT8", []int64{int64(len(data))}).SetRaw(data)
}
