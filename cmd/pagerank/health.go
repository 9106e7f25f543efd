package main

import (
	"fmt"

	"github.com/lioia/dense-pagerank/pkg/node"
	"github.com/lioia/dense-pagerank/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var healthCmd = &cobra.Command{
	Use:   "health [address]",
	Short: "Query the gRPC health service of a running node",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	addr := fmt.Sprintf("localhost:%d", env.GrpcPort)
	if len(args) == 1 {
		addr = args[0]
	}
	client, err := utils.HealthCall(addr)
	if err != nil {
		return xerrors.Errorf("could not connect to %s: %w", addr, err)
	}
	defer client.Close()

	resp, err := client.Client.Check(client.Ctx, &healthpb.HealthCheckRequest{Service: node.ServiceName})
	if err != nil {
		return xerrors.Errorf("health check to %s failed: %w", addr, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", addr, resp.Status)
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		return xerrors.Errorf("node at %s is %s", addr, resp.Status)
	}
	return nil
}
