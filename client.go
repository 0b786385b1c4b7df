package infer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/hlts2/gocache"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/modelserve/go-infer/inference"
	"github.com/modelserve/go-infer/internal/transport"
)

// Client talks to a single inference server over one gRPC connection. All
// methods are safe for concurrent use.
type Client struct {
	addr              string
	log               zerolog.Logger
	transportSettings *transport.Settings
	callTimeout       time.Duration
	metadataTTL       time.Duration

	conn     *grpc.ClientConn
	rpc      inference.GRPCInferenceServiceClient
	metadata *metadataCache

	mu       sync.Mutex
	closed   bool
	sessions map[*InferStream]struct{}
}

// New connects to the inference server at addr. The connection is
// established eagerly; a server that cannot be reached within the dial
// timeout fails construction.
func New(ctx context.Context, addr string, options ...Option) (*Client, error) {
	ts := transport.DefaultSettings()
	c := &Client{
		addr:              addr,
		log:               *zerolog.Ctx(ctx),
		transportSettings: &ts,
		sessions:          make(map[*InferStream]struct{}),
	}

	for _, apply := range options {
		apply(c)
	}

	conn, err := transport.Dial(ctx, addr, c.transportSettings)
	if err != nil {
		return nil, fmt.Errorf("connect to inference server at %s: %w", addr, err)
	}
	c.conn = conn
	c.rpc = inference.NewGRPCInferenceServiceClient(conn)
	if c.metadataTTL > 0 {
		c.metadata = newMetadataCache(c.metadataTTL)
	}
	return c, nil
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used by the client and its stream sessions.
func WithLogger(lg zerolog.Logger) Option {
	return func(c *Client) {
		c.log = lg
	}
}

// WithGRPCLogger sets the logger wired into the gRPC call interceptors.
func WithGRPCLogger(lg *zap.Logger) Option {
	return func(c *Client) {
		c.transportSettings.Log = lg
	}
}

// WithDialTimeout bounds how long New waits for the connection.
func WithDialTimeout(dur time.Duration) Option {
	return func(c *Client) {
		c.transportSettings.DialTimeout = dur
	}
}

// WithInsecure disables transport security.
func WithInsecure() Option {
	return func(c *Client) {
		c.transportSettings.Insecure = true
	}
}

// WithTLS configures mutual TLS from PEM files. ca may be empty to use the
// system roots.
func WithTLS(cert, key, ca string) Option {
	return func(c *Client) {
		c.transportSettings.ClientCertificate = cert
		c.transportSettings.ClientCertificateKey = key
		c.transportSettings.CACertificate = ca
	}
}

// WithCallTimeout bounds every unary call made through the client. Zero
// means calls are bounded only by their context.
func WithCallTimeout(dur time.Duration) Option {
	return func(c *Client) {
		c.callTimeout = dur
	}
}

// WithMetadataCache caches model metadata and config lookups for ttl.
func WithMetadataCache(ttl time.Duration) Option {
	return func(c *Client) {
		c.metadataTTL = ttl
	}
}

// WithDialOptions appends extra gRPC dial options.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.transportSettings.ExtraOpts = append(c.transportSettings.ExtraOpts, opts...)
	}
}

func (c *Client) callCtx(ctx context.Context, headers map[string]string) (context.Context, context.CancelFunc) {
	ctx = c.log.WithContext(ctx)
	if len(headers) > 0 {
		kv := make([]string, 0, 2*len(headers))
		for k, v := range headers {
			kv = append(kv, k, v)
		}
		ctx = metadata.AppendToOutgoingContext(ctx, kv...)
	}
	if c.callTimeout > 0 {
		return context.WithTimeout(ctx, c.callTimeout)
	}
	return context.WithCancel(ctx)
}

// Infer runs a single blocking inference against the given model. The call
// is attempted exactly once; transport failures are returned as
// *ServerError.
func (c *Client) Infer(ctx context.Context, modelName string, inputs []*InferInput, opts ...InferOption) (*InferResult, error) {
	o := collectInferOptions(opts)
	req := buildInferRequest(modelName, inputs, o)

	cctx, cancel := c.callCtx(ctx, o.headers)
	defer cancel()

	start := time.Now()
	log := zerolog.Ctx(cctx).With().Str("model", modelName).Logger()
	log.Debug().Msg("sending inference request")

	resp, err := c.rpc.ModelInfer(cctx, req)
	if err != nil {
		log.Debug().Err(err).Msg("inference failed")
		return nil, grpcError(err)
	}
	log.Debug().Dur("took", time.Since(start)).Msg("inference complete")
	return newInferResult(resp), nil
}

// IsServerLive reports whether the server is live.
func (c *Client) IsServerLive(ctx context.Context) (bool, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.ServerLive(cctx, &inference.ServerLiveRequest{})
	if err != nil {
		return false, grpcError(err)
	}
	return resp.GetLive(), nil
}

// IsServerReady reports whether the server is ready for inferencing.
func (c *Client) IsServerReady(ctx context.Context) (bool, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.ServerReady(cctx, &inference.ServerReadyRequest{})
	if err != nil {
		return false, grpcError(err)
	}
	return resp.GetReady(), nil
}

// IsModelReady reports whether the named model is ready. version may be
// empty to let the server pick one.
func (c *Client) IsModelReady(ctx context.Context, modelName, modelVersion string) (bool, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.ModelReady(cctx, &inference.ModelReadyRequest{Name: modelName, Version: modelVersion})
	if err != nil {
		return false, grpcError(err)
	}
	return resp.GetReady(), nil
}

// ServerMetadata returns the name, version and extensions of the server.
func (c *Client) ServerMetadata(ctx context.Context) (*inference.ServerMetadataResponse, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.ServerMetadata(cctx, &inference.ServerMetadataRequest{})
	if err != nil {
		return nil, grpcError(err)
	}
	return resp, nil
}

// ModelMetadata returns the metadata of the named model. Served from the
// metadata cache when one is configured.
func (c *Client) ModelMetadata(ctx context.Context, modelName, modelVersion string) (*inference.ModelMetadataResponse, error) {
	load := func() (interface{}, error) {
		cctx, cancel := c.callCtx(ctx, nil)
		defer cancel()

		resp, err := c.rpc.ModelMetadata(cctx, &inference.ModelMetadataRequest{Name: modelName, Version: modelVersion})
		if err != nil {
			return nil, grpcError(err)
		}
		return resp, nil
	}

	if c.metadata == nil {
		v, err := load()
		if err != nil {
			return nil, err
		}
		return v.(*inference.ModelMetadataResponse), nil
	}

	v, err := c.metadata.GetOrLoad("metadata:"+modelName+":"+modelVersion, load)
	if err != nil {
		return nil, err
	}
	return v.(*inference.ModelMetadataResponse), nil
}

// ModelConfig returns the configuration of the named model. Served from
// the metadata cache when one is configured.
func (c *Client) ModelConfig(ctx context.Context, modelName, modelVersion string) (*inference.ModelConfigResponse, error) {
	load := func() (interface{}, error) {
		cctx, cancel := c.callCtx(ctx, nil)
		defer cancel()

		resp, err := c.rpc.ModelConfig(cctx, &inference.ModelConfigRequest{Name: modelName, Version: modelVersion})
		if err != nil {
			return nil, grpcError(err)
		}
		return resp, nil
	}

	if c.metadata == nil {
		v, err := load()
		if err != nil {
			return nil, err
		}
		return v.(*inference.ModelConfigResponse), nil
	}

	v, err := c.metadata.GetOrLoad("config:"+modelName+":"+modelVersion, load)
	if err != nil {
		return nil, err
	}
	return v.(*inference.ModelConfigResponse), nil
}

// ModelStatistics returns inference statistics for the named model, or for
// all models when modelName is empty.
func (c *Client) ModelStatistics(ctx context.Context, modelName, modelVersion string) (*inference.ModelStatisticsResponse, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.ModelStatistics(cctx, &inference.ModelStatisticsRequest{Name: modelName, Version: modelVersion})
	if err != nil {
		return nil, grpcError(err)
	}
	return resp, nil
}

// RepositoryIndex lists the contents of the model repository. When ready
// is true only models currently available for inferencing are returned.
func (c *Client) RepositoryIndex(ctx context.Context, repositoryName string, ready bool) (*inference.RepositoryIndexResponse, error) {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	resp, err := c.rpc.RepositoryIndex(cctx, &inference.RepositoryIndexRequest{RepositoryName: repositoryName, Ready: ready})
	if err != nil {
		return nil, grpcError(err)
	}
	return resp, nil
}

// LoadModel requests that the server load or reload the named model.
func (c *Client) LoadModel(ctx context.Context, modelName string) error {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	if _, err := c.rpc.RepositoryModelLoad(cctx, &inference.RepositoryModelLoadRequest{ModelName: modelName}); err != nil {
		return grpcError(err)
	}
	return nil
}

// UnloadModel requests that the server unload the named model.
func (c *Client) UnloadModel(ctx context.Context, modelName string) error {
	cctx, cancel := c.callCtx(ctx, nil)
	defer cancel()

	if _, err := c.rpc.RepositoryModelUnload(cctx, &inference.RepositoryModelUnloadRequest{ModelName: modelName}); err != nil {
		return grpcError(err)
	}
	return nil
}

func (c *Client) register(s *InferStream) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return &ServerError{Msg: "client is closed"}
	}
	c.sessions[s] = struct{}{}
	return nil
}

func (c *Client) unregister(s *InferStream) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, s)
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close shuts down every stream session opened through the client and then
// the underlying connection. Failures are collected rather than aborting
// the shutdown early.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	sessions := make([]*InferStream, 0, len(c.sessions))
	for s := range c.sessions {
		sessions = append(sessions, s)
	}
	c.sessions = make(map[*InferStream]struct{})
	c.mu.Unlock()

	var result error
	for _, s := range sessions {
		if err := s.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := c.conn.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}

type metadataCache struct {
	cache gocache.Gocache
}

func newMetadataCache(ttl time.Duration) *metadataCache {
	return &metadataCache{cache: gocache.New(gocache.WithExpireAt(ttl))}
}

func (c *metadataCache) GetOrLoad(key string, loader func() (interface{}, error)) (interface{}, error) {
	if v, found := c.cache.Get(key); found {
		return v, nil
	}

	v, err := loader()
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, v)
	return v, nil
}
