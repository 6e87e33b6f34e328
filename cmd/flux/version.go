package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/flux"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of flux",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("flux version %s\n", strings.TrimSpace(flux.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
