package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"labelkey/internal/crypto"
	"labelkey/internal/didkey"
)

// inspectCmd decodes a did:key or multibase private key and prints what it holds.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <did:key|z...>",
		Short: "Decode a did:key or multibase private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := args[0]

			if didkey.IsPrivate(in) {
				_, keys, err := appCtx.Keys.Decode(in)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Type:        ed25519 private key\n")
				fmt.Fprintf(out, "Public key:  %s\n", keys.PublicDIDKey)
				in = keys.PublicDIDKey.String()
			}

			pub, err := didkey.ParsePublic(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Codec:       ed25519-pub (0xed)\n")
			fmt.Fprintf(out, "Raw key:     %s\n", hex.EncodeToString(pub[:]))
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(pub))
			return nil
		},
	}
}
