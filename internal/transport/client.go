package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io/ioutil"
	"time"

	"go.uber.org/zap"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
)

func DefaultSettings() Settings {
	return Settings{
		Log:         zap.NewNop(),
		DialTimeout: 20 * time.Second,
	}
}

type Settings struct {
	Log                  *zap.Logger
	DialTimeout          time.Duration
	Insecure             bool
	ClientCertificate    string
	ClientCertificateKey string
	CACertificate        string
	ExtraOpts            []grpc.DialOption
}

// Dial opens the single client connection used for all calls against the
// serving endpoint. The connection is established eagerly so that
// configuration problems surface at construction time.
func Dial(ctx context.Context, addr string, cfg *Settings) (*grpc.ClientConn, error) {
	opts := append([]grpc.DialOption(nil), cfg.ExtraOpts...)

	switch {
	case cfg.Insecure:
		opts = append(opts, grpc.WithInsecure())
	case cfg.ClientCertificate != "" || cfg.CACertificate != "":
		creds, err := mkTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	default:
		return nil, errors.New("transport: either insecure mode or TLS credentials must be configured")
	}

	opts = append(opts,
		grpc.WithBlock(),
		grpc.WithChainStreamInterceptor(
			StreamRequestIDInterceptor(),
			grpc_zap.StreamClientInterceptor(cfg.Log),
		),
		grpc.WithChainUnaryInterceptor(
			UnaryRequestIDInterceptor(),
			grpc_zap.UnaryClientInterceptor(cfg.Log),
		),
	)

	dctx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	return grpc.DialContext(dctx, addr, opts...)
}

func mkTLSConfig(scfg *Settings) (credentials.TransportCredentials, error) {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	var err error
	if scfg.ClientCertificate != "" && scfg.ClientCertificateKey != "" {
		cfg.Certificates = make([]tls.Certificate, 1)
		cfg.Certificates[0], err = tls.LoadX509KeyPair(scfg.ClientCertificate, scfg.ClientCertificateKey)
	}
	if err != nil {
		return nil, err
	}
	if scfg.CACertificate != "" {
		caCert, caCertErr := ioutil.ReadFile(scfg.CACertificate)
		if caCertErr != nil {
			return nil, caCertErr
		}
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		cfg.RootCAs = caCertPool
	}
	return credentials.NewTLS(cfg), nil
}
