package main

import (
	"net/http"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"labelkey/internal/devpds"
	"labelkey/internal/domain"
)

var log = logging.Logger("cmd")

func main() {
	var addr, handle, password, did, token string

	root := &cobra.Command{
		Use:   "devpds",
		Short: "In-memory PDS for trying labelkey locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = logging.SetLogLevel("*", "info")

			srv := devpds.New(devpds.Account{
				Handle:   domain.Handle(handle),
				Password: password,
				DID:      domain.DID(did),
			})
			srv.Token = token

			log.Infof("dev pds listening on %s (account %s)", addr, handle)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}
	root.Flags().StringVar(&addr, "addr", "127.0.0.1:2583", "listen address")
	root.Flags().StringVar(&handle, "handle", "labeler.test", "account handle")
	root.Flags().StringVar(&password, "password", "labeler-password", "account password")
	root.Flags().StringVar(&did, "did", "did:plc:devlabeler", "account DID")
	root.Flags().StringVar(&token, "token", "", "fixed PLC token to issue (random if empty)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
