package types

// Ed25519Seed is the raw 32-byte Ed25519 private scalar seed.
type Ed25519Seed [32]byte

// Ed25519Public is a raw 32-byte Ed25519 public point.
type Ed25519Public [32]byte

// Keypair holds the raw halves of an Ed25519 signing key.
type Keypair struct {
	Private Ed25519Seed   `json:"private"`
	Public  Ed25519Public `json:"public"`
}
