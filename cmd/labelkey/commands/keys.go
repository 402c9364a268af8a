package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"labelkey/internal/domain"
)

var (
	reuseKey     string
	fromKeystore bool
	saveKey      bool
	asJSON       bool
)

// addKeyFlags registers the flags selecting which signing key a command uses.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&reuseKey, "key", "", "reuse an existing multibase private key (z...) instead of generating one")
	cmd.Flags().BoolVar(&fromKeystore, "from-keystore", false, "reuse the key saved in the keystore (needs -p)")
	cmd.Flags().BoolVar(&saveKey, "save", false, "save the key to the encrypted keystore (needs -p)")
	cmd.MarkFlagsMutuallyExclusive("key", "from-keystore")
}

// resolveKeys returns the key selected by the key flags. fresh reports
// whether it was generated by this run.
func resolveKeys() (keys domain.EncodedKeys, fresh bool, err error) {
	var kp domain.Keypair
	switch {
	case reuseKey != "":
		kp, keys, err = appCtx.Keys.Decode(reuseKey)
	case fromKeystore:
		if passphrase == "" {
			return keys, false, fmt.Errorf("passphrase required (-p)")
		}
		kp, keys, err = appCtx.Identity.LoadIdentity(passphrase)
	default:
		kp, keys, err = appCtx.Keys.GenerateAndEncode()
		fresh = true
	}
	if err != nil {
		return domain.EncodedKeys{}, false, err
	}

	if saveKey && !fromKeystore {
		if passphrase == "" {
			return keys, fresh, fmt.Errorf("passphrase required (-p) to save the key")
		}
		if _, err := appCtx.Identity.SaveIdentity(passphrase, kp); err != nil {
			return keys, fresh, err
		}
	}
	return keys, fresh, nil
}

// printKeys shows the operator both encodings. The private key is the
// labeler's SIGNING_KEY secret.
func printKeys(w io.Writer, keys domain.EncodedKeys) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	}
	_, err := fmt.Fprintf(w, "\n=== LABELER SIGNING KEY ===\n"+
		"PRIVATE KEY (store as the labeler's SIGNING_KEY secret):\n%s\n\n"+
		"PUBLIC KEY (did:key):\n%s\n"+
		"===========================\n\n",
		keys.PrivateMultibase, keys.PublicDIDKey)
	return err
}
