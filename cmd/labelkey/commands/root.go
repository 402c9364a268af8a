package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"labelkey/internal/app"
	"labelkey/internal/atproto"
)

var log = logging.Logger("cmd")

var (
	home       string
	passphrase string
	logLevel   string
	pdsHost    string
	timeout    time.Duration
	appCtx     *app.Wire

	handle   string
	password string
)

// Execute runs the CLI until it completes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the labelkey command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "labelkey",
		Short:         "Provision and register a labeler signing key",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetLogLevel("*", logLevel); err != nil {
				return err
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".labelkey")
			}

			w, err := app.NewWire(app.Config{
				Home:    home,
				PDSHost: pdsHost,
				Timeout: timeout,
			})
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "keystore dir (default ~/.labelkey)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keystore")
	root.PersistentFlags().StringVar(&pdsHost, "pds", atproto.DefaultHost, "PDS base URL of the labeler account")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for each PDS request")

	root.AddCommand(
		generateCmd(),
		inspectCmd(),
		requestTokenCmd(),
		setupCmd(),
		declareCmd(),
	)
	return root
}

// addLoginFlags registers the account credentials shared by the PDS commands.
func addLoginFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&handle, "handle", "", "labeler account handle")
	cmd.Flags().StringVar(&password, "password", "", "account password or app password")
	_ = cmd.MarkFlagRequired("handle")
	_ = cmd.MarkFlagRequired("password")
}
