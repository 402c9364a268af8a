package interfaces

import domaintypes "labelkey/internal/domain/types"

// KeyStore persists a signing keypair encrypted under a passphrase.
type KeyStore interface {
	SaveKeypair(passphrase string, keypair domaintypes.Keypair) error
	LoadKeypair(passphrase string) (domaintypes.Keypair, error)
}
