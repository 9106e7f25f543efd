package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lioia/dense-pagerank/pkg/node"
	"github.com/lioia/dense-pagerank/pkg/utils"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve PageRank runs over HTTP, with a gRPC health service",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	config, err := utils.LoadConfiguration(v)
	if err != nil {
		return err
	}

	var publisher node.Publisher
	if url := env.RabbitURL(); url != "" {
		queue, err := node.NewQueuePublisher(url, env.ResultQueue)
		utils.FailOnError("Failed to create result publisher", err)
		defer queue.Close()
		publisher = queue
		utils.ServerLog("Publishing reports to queue %s", env.ResultQueue)
	}

	n, err := node.NewNode(config, publisher)
	utils.FailOnError("Failed to create node", err)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return n.Serve(ctx, env)
}
