package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operator tooling for the admissions portal service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newTokenCmd())
	return root
}
