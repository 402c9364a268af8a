package app

import (
	"net/http"

	"labelkey/internal/atproto"
	"labelkey/internal/didkey"
	"labelkey/internal/domain"
	"labelkey/internal/services/identity"
	"labelkey/internal/services/keygen"
	"labelkey/internal/services/labeler"
	"labelkey/internal/services/plcsetup"
	"labelkey/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Keys     domain.KeyEncoder
	Identity domain.IdentityService
	PLC      domain.PLCRegistrar
	Labeler  domain.LabelerService
	KeyStore *store.KeyFileStore
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	keys := keygen.New(nil)

	keyStore := store.NewKeyFileStore(cfg.Home)
	keyStore.DIDFor = func(kp domain.Keypair) (domain.DID, error) {
		return didkey.FormatPublic(kp.Public[:])
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	host := cfg.PDSHost
	if host == "" {
		host = atproto.DefaultHost
	}
	pds := atproto.NewClient(host, httpClient)

	return &Wire{
		Keys:     keys,
		Identity: identity.New(keys, keyStore),
		PLC:      plcsetup.New(pds),
		Labeler:  labeler.New(pds),
		KeyStore: keyStore,
		HTTP:     httpClient,
	}, nil
}
