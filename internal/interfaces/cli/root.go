// Package cli defines the glycoshape command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var configFile string

// NewRootCommand builds the root command with all subcommands attached.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:          "glycoshape",
		Short:        "GlycoShape glycan structure database service",
		Long:         "Serves the GlycoShape glycan 3D-structure database and resolves glycan identifiers across GLYCAM, IUPAC, WURCS and GlyTouCan notations.",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to the configuration file")

	root.AddCommand(
		newServeCommand(),
		newResolveCommand(),
		newSearchCommand(),
		newConvertCommand(),
	)
	return root
}
