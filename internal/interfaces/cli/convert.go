package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/domain/glycan"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/conversion"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
)

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert glycan notations",
	}
	cmd.AddCommand(
		newConvertGlycamCommand(),
		newConvertIUPACCommand(),
		newConvertSMILESCommand(),
		newConvertAnomersCommand(),
	)
	return cmd
}

func newConvertGlycamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "glycam <sequence>",
		Short: "Rewrite a GLYCAM condensed sequence as IUPAC condensed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(os.Stdout, glycan.GLYCAMToIUPAC(args[0]))
			return nil
		},
	}
}

func newConvertIUPACCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "iupac <sequence>",
		Short: "Convert an IUPAC condensed sequence to WURCS via GlyCosmos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(configFile).Load()
			if err != nil {
				return err
			}
			client := conversion.NewGlyCosmosClient(cfg.Conversion, nil, logging.NewNopLogger())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			result, err := client.IUPACToWURCS(ctx, args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "conversion timeout")
	return cmd
}

func newConvertSMILESCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "smiles <string>",
		Short: "Convert a SMILES string to WURCS via MolWURCS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader(configFile).Load()
			if err != nil {
				return err
			}
			mw := conversion.NewMolWURCS(cfg.Conversion, nil, logging.NewNopLogger())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			wurcs, err := mw.SMILESToWURCS(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, wurcs)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "conversion timeout")
	return cmd
}

func newConvertAnomersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "anomers <wurcs>",
		Short: "Print the alpha and beta WURCS variants of an archetype",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, beta := glycan.AnomerVariants(args[0])
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{"alpha": alpha, "beta": beta})
		},
	}
}
