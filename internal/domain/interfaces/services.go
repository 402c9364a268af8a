package interfaces

import (
	"context"

	domaintypes "labelkey/internal/domain/types"
)

// KeyEncoder generates Ed25519 keypairs and renders them as multibase / did:key.
type KeyEncoder interface {
	GenerateAndEncode() (domaintypes.Keypair, domaintypes.EncodedKeys, error)
	Encode(keypair domaintypes.Keypair) (domaintypes.EncodedKeys, error)
	Decode(privateMultibase string) (domaintypes.Keypair, domaintypes.EncodedKeys, error)
}

// IdentityService keeps the signing key in the local encrypted keystore.
type IdentityService interface {
	SaveIdentity(passphrase string, keypair domaintypes.Keypair) (domaintypes.EncodedKeys, error)
	LoadIdentity(passphrase string) (domaintypes.Keypair, domaintypes.EncodedKeys, error)
}

// PLCRegistrar points an account's DID document at a labeler signing key.
type PLCRegistrar interface {
	RequestToken(ctx context.Context, cfg domaintypes.SetupConfig) error
	Setup(
		ctx context.Context,
		cfg domaintypes.SetupConfig,
		keys domaintypes.EncodedKeys,
	) (domaintypes.SetupResult, error)
}

// LabelerService publishes the labeler's service declaration record.
type LabelerService interface {
	Declare(
		ctx context.Context,
		cfg domaintypes.SetupConfig,
		definitions []domaintypes.LabelDefinition,
	) (domaintypes.DID, error)
}
