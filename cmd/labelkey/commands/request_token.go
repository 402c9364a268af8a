package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelkey/internal/domain"
)

func requestTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-token",
		Short: "Ask the PDS to email the PLC operation token needed by setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := domain.SetupConfig{Handle: domain.Handle(handle), Credential: password}
			if err := appCtx.PLC.RequestToken(cmd.Context(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PLC token requested. Check the email of %s, then run setup --token.\n", handle)
			return nil
		},
	}
	addLoginFlags(cmd)
	return cmd
}
