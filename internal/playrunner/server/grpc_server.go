// Package server exposes a playrunner daemon over gRPC and an operational
// HTTP listener.
package server

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/ehsaniara/playrunner/api"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/security"
)

// HealthChecker reports whether a dependency can serve requests.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewGRPCServer builds the gRPC server with JobService and the standard
// health service registered. The caller owns Serve and Stop.
func NewGRPCServer(cfg *config.Config, service api.JobServiceServer) (*grpc.Server, *health.Server, error) {
	serverLogger := logger.WithField("component", "grpc-server")

	grpcOptions := []grpc.ServerOption{
		grpc.MaxRecvMsgSize(int(cfg.GRPC.MaxRecvMsgSize)),
		grpc.MaxSendMsgSize(int(cfg.GRPC.MaxSendMsgSize)),
		grpc.MaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: cfg.GRPC.MaxConnectionIdle,
			Time:              cfg.GRPC.KeepAliveTime,
			Timeout:           cfg.GRPC.KeepAliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             cfg.GRPC.KeepAliveTime / 2,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(loggingInterceptor(serverLogger)),
	}

	if cfg.Server.TLS.CertFile != "" {
		tlsConfig, err := security.LoadServerTLSConfig(cfg.Server.TLS)
		if err != nil {
			serverLogger.Error("failed to load TLS certificate", "certFile", cfg.Server.TLS.CertFile, "error", err)
			return nil, nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		grpcOptions = append(grpcOptions, grpc.Creds(credentials.NewTLS(tlsConfig)))
		serverLogger.Info("TLS enabled", "mutual", cfg.Server.TLS.ClientCAFile != "")
	} else {
		serverLogger.Warn("TLS disabled, start-time passwords travel in plaintext")
	}

	grpcServer := grpc.NewServer(grpcOptions...)
	api.RegisterJobServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return grpcServer, healthServer, nil
}

// WatchHealth mirrors checker into the gRPC health service until ctx is
// done, then marks every service as not serving.
func WatchHealth(ctx context.Context, checker HealthChecker, hs *health.Server, interval time.Duration) {
	log := logger.WithField("component", "health")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_SERVING
	for {
		select {
		case <-ctx.Done():
			hs.Shutdown()
			return
		case <-ticker.C:
		}

		checkCtx, cancel := context.WithTimeout(ctx, interval)
		err := checker.HealthCheck(checkCtx)
		cancel()

		next := healthpb.HealthCheckResponse_SERVING
		if err != nil {
			next = healthpb.HealthCheckResponse_NOT_SERVING
		}
		if next != last {
			log.Warn("serving status changed", "status", next.String(), "error", err)
			last = next
		}
		hs.SetServingStatus(api.ServiceName, next)
		hs.SetServingStatus("", next)
	}
}

func loggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Debug("rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
		return resp, err
	}
}
