// Package didkey renders raw Ed25519 keys in the two textual forms a labeler
// needs: the multibase private key kept as the service secret, and the
// did:key public identifier published in the account's DID document.
//
//	private: z<base58btc(seed)>                 32 decoded bytes
//	public:  did:key:z<base58btc(0xed 0x01 key)> 34 decoded bytes
//
// Encoding is deterministic and never touches randomness. Every malformed
// input is reported as domain.ErrEncoding.
package didkey
