package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tallyctl",
		Short: "Rank alternatives with the Weighted Product Method",
		Long: `tallyctl evaluates decision matrices with the Weighted Product Method.

A decision file (YAML or JSON) lists criteria with a percentage weight and a
benefit/cost type, and alternatives with one positive value per criterion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		evalCmd(),
		templateCmd(),
		resizeCmd(),
		submitCmd(),
		watchCmd(),
	)
	return root
}
