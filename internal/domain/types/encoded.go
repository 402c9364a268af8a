package types

// EncodedKeys is the textual rendering of a Keypair.
//
// PrivateMultibase is the secret signing credential and must be stored
// securely by the caller. PublicDIDKey is safe to publish.
type EncodedKeys struct {
	PrivateMultibase string `json:"privateKey"`
	PublicDIDKey     DID    `json:"publicKey"`
}
