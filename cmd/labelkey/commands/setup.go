package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"labelkey/internal/domain"
	"labelkey/internal/services/plcsetup"
)

var (
	endpoint string
	token    string
)

// setupCmd registers the labeler key and endpoint in the account's DID document.
func setupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register a labeler signing key and endpoint with the PLC directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg := domain.SetupConfig{
				Handle:          domain.Handle(handle),
				Credential:      password,
				ServiceEndpoint: endpoint,
				Token:           token,
			}
			if err := plcsetup.Validate(cfg); err != nil {
				return err
			}

			keys, fresh, err := resolveKeys()
			if err != nil {
				return err
			}
			// Show fresh keys before any network call so a failed
			// registration never loses them.
			if fresh {
				if err := printKeys(out, keys); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "Starting PLC setup for %s...\n", handle)
			res, err := appCtx.PLC.Setup(cmd.Context(), cfg, keys)
			if err != nil {
				if errors.Is(err, domain.ErrCollaborator) {
					log.Errorw("plc setup failed", "handle", handle, "signingKey", keys.PublicDIDKey, "err", err)
					fmt.Fprintf(cmd.ErrOrStderr(),
						"PLC setup failed. The key %s is still valid; retry with --key or --from-keystore.\n",
						keys.PublicDIDKey)
				}
				return err
			}

			fmt.Fprintf(out, "\n=== PLC SETUP SUCCESSFUL ===\n")
			fmt.Fprintf(out, "DID:         %s\n", res.DID)
			fmt.Fprintf(out, "Signing key: %s\n", res.SigningKey)
			fmt.Fprintf(out, "Endpoint:    %s\n", endpoint)
			fmt.Fprintf(out, "============================\n")
			return nil
		},
	}
	addLoginFlags(cmd)
	addKeyFlags(cmd)
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "public URL of the labeler service")
	cmd.Flags().StringVar(&token, "token", "", "PLC operation token from request-token")
	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
