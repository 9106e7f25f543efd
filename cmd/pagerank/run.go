package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lioia/dense-pagerank/pkg/graph"
	"github.com/lioia/dense-pagerank/pkg/node"
	"github.com/lioia/dense-pagerank/pkg/utils"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the ranks of one graph and print a report",
	Args:  cobra.NoArgs,
	RunE:  runCompute,
}

func init() {
	flags := runCmd.Flags()
	flags.String("output", "", "write every rank to this file")
	flags.String("render", "", "render the ranked graph with graphviz (.dot, .svg, .png, .jpg)")
	flags.Int("sample", 100, "print the rank of every n-th vertex (0: none)")
}

func runCompute(cmd *cobra.Command, _ []string) error {
	// Get the time at the very start
	start := time.Now()
	config, err := utils.LoadConfiguration(v)
	if err != nil {
		return err
	}
	adj, source, err := node.LoadAdjacency(config)
	if err != nil {
		return err
	}

	// Ctrl-C stops the run at the next iteration boundary
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	report, err := node.Run(ctx, config, adj, source)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	node.PrintReport(out, report, config.Sample)
	if config.Output != "" {
		if err := graph.Write(config.Output, report.Ranks); err != nil {
			return xerrors.Errorf("could not write ranks to %s: %w", config.Output, err)
		}
	}
	if config.Render != "" {
		if err := graph.RenderFile(adj, report.Ranks, config.Render); err != nil {
			utils.WarnLog("run", "Could not render graph: %v", err)
		}
	}
	if url := env.RabbitURL(); url != "" {
		publisher, err := node.NewQueuePublisher(url, env.ResultQueue)
		if err != nil {
			return err
		}
		defer publisher.Close()
		if err := publisher.Publish(ctx, report); err != nil {
			return xerrors.Errorf("could not publish report %s: %w", report.Id, err)
		}
	}
	fmt.Fprintf(out, "Total time taken: %.2f seconds.\n", time.Since(start).Seconds())
	return nil
}
