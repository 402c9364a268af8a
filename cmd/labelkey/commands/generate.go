package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a labeler signing key and print its encodings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, _, err := resolveKeys()
			if err != nil {
				return err
			}
			if err := printKeys(cmd.OutOrStdout(), keys); err != nil {
				return err
			}
			if saveKey && !asJSON {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", appCtx.KeyStore.Path())
			}
			return nil
		},
	}
	addKeyFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the keys as JSON")
	return cmd
}
