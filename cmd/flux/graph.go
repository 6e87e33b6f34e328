package main

import (
	"os"

	"github.com/aretw0/flux/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the dispatch pipeline visualization",
	Long:  `Outputs a Mermaid diagram (graph LR) of the middleware chain the demo store uses.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logging, _ := cmd.Flags().GetBool("logging")
		metrics, _ := cmd.Flags().GetBool("metrics")
		return cli.WriteGraph(os.Stdout, cli.GraphOptions{Logging: logging, Metrics: metrics})
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().Bool("logging", false, "Include the logging middleware (demo --debug)")
	graphCmd.Flags().Bool("metrics", true, "Include the metrics middleware")
}
