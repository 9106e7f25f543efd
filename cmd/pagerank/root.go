package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lioia/dense-pagerank/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	v       *viper.Viper   // Computation parameters
	env     utils.EnvVars // Service environment
)

var rootCmd = &cobra.Command{
	Use:   "pagerank",
	Short: "Time-boxed dense PageRank",
	Long: "pagerank computes the PageRank of a graph with a power iteration over a dense transition matrix, " +
		"stopping when the wall-clock budget is exhausted.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./config.{json,yaml,toml})")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log compute and server events")
	flags.Int("order", 1000, "number of vertices of generated graphs")
	flags.Float64("damping", 0.85, "damping factor, in (0, 1)")
	flags.Duration("budget", 10*time.Second, "wall-clock budget of the iteration loop")
	flags.Int("max-iterations", 0, "iteration safety ceiling (0: unbounded)")
	flags.Int("workers", 0, "goroutines sharing each iteration (0: one per CPU)")
	flags.String("generator", "sneaky", "graph generator: nice or sneaky")
	flags.String("graph", "", "edge list file or URL, overrides --generator")

	rootCmd.AddCommand(runCmd, serveCmd, healthCmd)
}

func initConfig() {
	var err error
	v, err = utils.NewViper(cfgFile)
	utils.FailOnError("Failed to load configuration", err)
	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"order":          "order",
		"damping":        "damping",
		"budget":         "budget",
		"max_iterations": "max-iterations",
		"workers":        "workers",
		"generator":      "generator",
		"graph":          "graph",
	})
	bindFlags(runCmd.Flags(), map[string]string{
		"output": "output",
		"render": "render",
		"sample": "sample",
	})

	env, err = utils.ReadEnvVars()
	utils.FailOnError("Failed to read environment variables", err)
	utils.InitLog(env.NodeLog || verbose, env.ServerLog || verbose)
}

func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		err := v.BindPFlag(key, flags.Lookup(name))
		utils.FailOnError("Failed to bind flag %s", err, name)
	}
}
