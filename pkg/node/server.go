package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/lioia/dense-pagerank/pkg/utils"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service name registered in the gRPC health service
const ServiceName = "pagerank"

// NewHealthServer creates a gRPC server whose health service reports this
// node as serving
func NewHealthServer() (*grpc.Server, *health.Server) {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return server, healthServer
}

// Serve runs the HTTP API and the gRPC health service until ctx is done
func (n *Node) Serve(ctx context.Context, env utils.EnvVars) error {
	grpcLis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", env.Host, env.GrpcPort))
	if err != nil {
		return xerrors.Errorf("failed to listen for gRPC server: %w", err)
	}
	apiLis, err := net.Listen("tcp", fmt.Sprintf("%s:%d", env.Host, env.Port))
	if err != nil {
		grpcLis.Close()
		return xerrors.Errorf("failed to listen for API server: %w", err)
	}
	n.Connection = apiLis.Addr().String()

	errs := make(chan error, 2)
	// Running gRPC server for health checks in a goroutine
	grpcServer, healthServer := NewHealthServer()
	go func() {
		utils.ServerLog("Starting gRPC health service at %s", grpcLis.Addr())
		errs <- grpcServer.Serve(grpcLis)
	}()

	api := n.NewAPI()
	api.Listener = apiLis
	go func() {
		fmt.Printf("Starting node %s at %s\n", n.Id, n.Connection)
		if err := api.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
			return
		}
		errs <- nil
	}()

	select {
	case <-ctx.Done():
	case err = <-errs:
	}
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if shutdownErr := api.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	grpcServer.GracefulStop()
	return err
}
