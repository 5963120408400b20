package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airline/api"
	"github.com/Domenick1991/airline/config"
	"github.com/Domenick1991/airline/internal/service/aircraft"
	"github.com/Domenick1991/airline/internal/service/flights"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name reported by the gRPC health service.
const ServiceName = "airline.flight.v1"

type Servers struct {
	grpcServer *grpc.Server
	health     *health.Server
	httpServer *http.Server
}

// Run starts the gRPC health server and the HTTP API and blocks until ctx is
// canceled or a server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, aircraftSvc aircraft.AircraftUseCase, logger *slog.Logger) error {
	s := newServers(cfg, flightSvc, aircraftSvc)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	return s.serve(ctx, lis, logger)
}

func (s *Servers) serve(ctx context.Context, lis net.Listener, logger *slog.Logger) error {
	errCh := make(chan error, 2)

	go func() { errCh <- s.grpcServer.Serve(lis) }()
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	logger.InfoContext(ctx, "servers started", "http", s.httpServer.Addr, "grpc", lis.Addr().String())

	select {
	case err := <-errCh:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.grpcServer.Stop()
		if shutdownErr := s.httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("shutdown http server", "error", shutdownErr)
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("servers stopped")
		return nil
	}
}

func newServers(cfg *config.Config, flightSvc flights.FlightUseCase, aircraftSvc aircraft.AircraftUseCase) *Servers {
	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           api.NewRouter(flightSvc, aircraftSvc),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Servers{
		grpcServer: grpcSrv,
		health:     healthSrv,
		httpServer: httpSrv,
	}
}
