package infer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modelserve/go-infer/inference"
)

func TestServerProbes(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	live, err := client.IsServerLive(context.Background())
	require.NoError(t, err)
	require.True(t, live)

	ready, err := client.IsServerReady(context.Background())
	require.NoError(t, err)
	require.True(t, ready)

	modelReady, err := client.IsModelReady(context.Background(), "simple", "")
	require.NoError(t, err)
	require.True(t, modelReady)
}

func TestInferRoundTrip(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	in := byteInput("INPUT0", []byte{1, 2, 3, 4})
	result, err := client.Infer(context.Background(), "simple", []*InferInput{in},
		WithModelVersion("1"),
		WithRequestID("unary-1"),
		WithHeaders(map[string]string{"x-tenant": "acme"}))
	require.NoError(t, err)

	require.Equal(t, "simple", result.ModelName())
	require.Equal(t, "1", result.ModelVersion())
	require.Equal(t, "unary-1", result.ID())

	raw, err := result.RawOutput("INPUT0")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, raw)

	_, err = result.Output("NOPE")
	require.Error(t, err)
}

func TestInferMapsTransportError(t *testing.T) {
	fake := &fakeInferenceServer{
		inferFn: func(*inference.ModelInferRequest) (*inference.ModelInferResponse, error) {
			return nil, status.Error(codes.InvalidArgument, "bad shape")
		},
	}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	_, err := client.Infer(context.Background(), "simple", nil)
	require.Error(t, err)

	serr, ok := err.(*ServerError)
	require.True(t, ok)
	require.Equal(t, "InvalidArgument", serr.Status)
	require.Equal(t, "bad shape", serr.Msg)
	require.Equal(t, "[InvalidArgument] bad shape", serr.Error())
}

func TestOutgoingCallsCarryRequestID(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	_, err := client.Infer(context.Background(), "simple", nil)
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.NotEmpty(t, fake.lastRequestID)
}

func TestAdminSurface(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	meta, err := client.ServerMetadata(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fake-server", meta.GetName())
	require.Contains(t, meta.GetExtensions(), "model_repository")

	mmeta, err := client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)
	require.Equal(t, "simple", mmeta.GetName())

	cfg, err := client.ModelConfig(context.Background(), "simple", "")
	require.NoError(t, err)
	require.Equal(t, int32(8), cfg.GetConfig().GetMaxBatchSize())

	stats, err := client.ModelStatistics(context.Background(), "simple", "")
	require.NoError(t, err)
	require.Len(t, stats.GetModelStats(), 1)
	require.Equal(t, uint64(42), stats.GetModelStats()[0].GetInferenceCount())

	idx, err := client.RepositoryIndex(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, idx.GetModels(), 1)
	require.Equal(t, "READY", idx.GetModels()[0].GetState())

	require.NoError(t, client.LoadModel(context.Background(), "simple"))
	require.NoError(t, client.UnloadModel(context.Background(), "simple"))
}

func TestMetadataCacheAvoidsSecondCall(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake, WithMetadataCache(time.Minute))
	defer shutdown()

	_, err := client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)
	_, err = client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Equal(t, 1, fake.metadataCalls)
}

func TestMetadataWithoutCacheCallsEveryTime(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	_, err := client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)
	_, err = client.ModelMetadata(context.Background(), "simple", "")
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Equal(t, 2, fake.metadataCalls)
}

func TestCloseShutsDownSessions(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	col := newCollector()
	stream := NewInferStream(col.callback)
	require.NoError(t, client.StreamInfer(context.Background(), stream, "simple", []*InferInput{byteInput("INPUT0", []byte{1})}))
	col.waitResult(t)

	require.NoError(t, client.Close())

	// The session was closed along with the client.
	require.Error(t, client.StreamInfer(context.Background(), stream, "simple", nil))

	// Close is idempotent.
	require.NoError(t, client.Close())
}

func TestInferResultJSON(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()

	result, err := client.Infer(context.Background(), "simple", nil, WithRequestID("json-1"))
	require.NoError(t, err)

	out, err := result.JSON()
	require.NoError(t, err)
	require.Contains(t, out, `"json-1"`)
}

func TestNewSessionOnClosedClientFails(t *testing.T) {
	fake := &fakeInferenceServer{}
	client, shutdown := newTestClient(t, fake)
	defer shutdown()
	require.NoError(t, client.Close())

	stream := NewInferStream(func(*InferResult, *ServerError) {})
	err := client.StreamInfer(context.Background(), stream, "simple", nil)
	require.Error(t, err)
}
