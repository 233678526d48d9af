package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/capstone"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of capstone",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "capstone version %s\n", strings.TrimSpace(capstone.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
