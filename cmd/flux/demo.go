package main

import (
	"github.com/aretw0/flux/internal/cli"
	"github.com/aretw0/flux/internal/config"
	"github.com/spf13/cobra"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive store demo",
	Long: `Starts a store holding a user profile and a counter. Commands dispatch
plain actions (inc, dec, set) or an asynchronous thunk (fetch) that sets the
user after a delay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.DemoOptions{}
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.Env, _ = cmd.Flags().GetString("env")
		opts.FetchDelay, _ = cmd.Flags().GetDuration("delay")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.Metrics, _ = cmd.Flags().GetBool("metrics")

		cmd.SilenceUsage = true
		return cli.RunDemo(opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringP("config", "c", config.DefaultPath, "Path to the YAML config file")
	demoCmd.Flags().String("env", "", "Environment tag passed to thunks (overrides config)")
	demoCmd.Flags().Duration("delay", 0, "Simulated fetch latency (overrides config)")
	demoCmd.Flags().Bool("debug", false, "Enable debug logging to stderr")
	demoCmd.Flags().Bool("plain", false, "Disable colors and markdown rendering")
	demoCmd.Flags().Bool("metrics", false, "Print dispatch metrics on exit")

	rootCmd.Flags().AddFlagSet(demoCmd.Flags())
	rootCmd.RunE = demoCmd.RunE
}
