package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelkey/internal/domain"
	"labelkey/internal/services/labeler"
)

func declareCmd() *cobra.Command {
	var labelsFile string

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Publish the labeler service record with its label definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := labeler.LoadDefinitions(labelsFile)
			if err != nil {
				return err
			}
			cfg := domain.SetupConfig{Handle: domain.Handle(handle), Credential: password}
			did, err := appCtx.Labeler.Declare(cmd.Context(), cfg, defs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Labeler declared for %s with %d labels:\n", did, len(defs))
			for _, d := range defs {
				fmt.Fprintf(out, "  %s\n", d.Identifier)
			}
			fmt.Fprintf(out, "Profile: https://bsky.app/profile/%s\n", handle)
			return nil
		},
	}
	addLoginFlags(cmd)
	cmd.Flags().StringVar(&labelsFile, "labels", "", "YAML file with label definitions")
	_ = cmd.MarkFlagRequired("labels")
	return cmd
}
