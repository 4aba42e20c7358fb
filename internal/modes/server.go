// Package modes holds the long-running entry points of the playrunner binary.
package modes

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/ehsaniara/playrunner/internal/playrunner/core"
	"github.com/ehsaniara/playrunner/internal/playrunner/server"
	"github.com/ehsaniara/playrunner/pkg/config"
	"github.com/ehsaniara/playrunner/pkg/logger"
	"github.com/ehsaniara/playrunner/pkg/platform"
)

const (
	healthInterval  = 15 * time.Second
	shutdownTimeout = 30 * time.Second
)

// RunServer starts the daemon and blocks until ctx is done or SIGINT/SIGTERM
// arrives. Jobs a previous process on this node left pending or running end
// in status error before workers start. On shutdown the listeners stop
// first, then queued jobs end in error and running jobs get shutdownTimeout
// to finish.
func RunServer(ctx context.Context, cfg *config.Config) error {
	log := logger.WithField("mode", "server")

	log.Info("starting playrunner server",
		"address", cfg.GetServerAddress(),
		"storage", cfg.Storage.Backend,
		"workers", cfg.Dispatch.Workers)

	components, err := core.NewComponentFactory(cfg, platform.NewPlatform()).CreateServices(ctx)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}
	defer func() {
		if closeErr := components.Close(); closeErr != nil {
			log.Error("error closing services", "error", closeErr)
		}
	}()

	if n, e := components.Dispatcher.Recover(ctx); e != nil {
		log.Error("failed to recover orphaned jobs", "error", e)
	} else if n > 0 {
		log.Info("ended orphaned jobs", "count", n)
	}

	if e := components.Dispatcher.Start(); e != nil {
		return fmt.Errorf("failed to start dispatcher: %w", e)
	}

	service := server.NewJobServiceServer(components.Controller, components.Dispatcher, components.Bus)
	grpcServer, healthServer, err := server.NewGRPCServer(cfg, service)
	if err != nil {
		return fmt.Errorf("failed to create gRPC server: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.GetServerAddress())
	if err != nil {
		log.Error("failed to create listener", "address", cfg.GetServerAddress(), "error", err)
		return fmt.Errorf("failed to listen: %w", err)
	}

	var ops *http.Server
	if cfg.HTTP.Enabled {
		ops = server.NewOpsServer(cfg.HTTP.Address, server.NewOpsRouter(components.Controller, components.Store))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting gRPC server", "address", lis.Addr().String())
		if serveErr := grpcServer.Serve(lis); serveErr != nil {
			return fmt.Errorf("gRPC server stopped: %w", serveErr)
		}
		return nil
	})

	if ops != nil {
		g.Go(func() error {
			log.Info("starting ops HTTP server", "address", ops.Addr)
			if serveErr := ops.ListenAndServe(); serveErr != nil && !stderrors.Is(serveErr, http.ErrServerClosed) {
				return fmt.Errorf("ops HTTP server stopped: %w", serveErr)
			}
			return nil
		})
	}

	g.Go(func() error {
		server.WatchHealth(gctx, components.Store, healthServer, healthInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		if ops != nil {
			if e := ops.Shutdown(shutdownCtx); e != nil {
				log.Warn("ops HTTP shutdown incomplete", "error", e)
			}
		}
		gracefulStop(shutdownCtx, grpcServer)

		if e := components.Dispatcher.Stop(shutdownCtx); e != nil {
			log.Warn("dispatcher did not drain before timeout", "error", e)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}

// gracefulStop waits for in-flight RPCs until ctx is done, then closes
// whatever is left, such as long-running watch streams.
func gracefulStop(ctx context.Context, s *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		s.Stop()
	}
}
