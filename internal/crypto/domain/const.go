package domain

// Binary layout constants for the token cipher blob format.
//
// A blob is the hex encoding of salt ‖ nonce ‖ tag ‖ ciphertext with fixed
// byte offsets. There is no length prefix or version byte: the format is
// rigid, and any change to these constants invalidates every previously
// stored blob.
const (
	// MasterKeySize is the size in bytes of the master key (AES-256).
	MasterKeySize = 32

	// DerivedKeySize is the size in bytes of a PBKDF2-derived encryption key.
	DerivedKeySize = 32

	// SaltSize is the size in bytes of the per-operation key derivation salt.
	// A fresh salt is drawn for every encrypt call and stored in the blob so
	// decrypt can rederive the same key.
	SaltSize = 64

	// NonceSize is the size in bytes of the AES-GCM nonce (IV). Freshness is
	// guaranteed per call; combined with the per-call salt, key+nonce reuse
	// is practically impossible.
	NonceSize = 16

	// TagSize is the size in bytes of the GCM authentication tag.
	TagSize = 16

	// PBKDF2Iterations is the iteration count for PBKDF2-HMAC-SHA512
	// key derivation.
	PBKDF2Iterations = 100000
)

// Fixed byte offsets inside a decoded blob.
const (
	saltOffset       = 0
	nonceOffset      = SaltSize
	tagOffset        = SaltSize + NonceSize
	ciphertextOffset = SaltSize + NonceSize + TagSize
)

// MinBlobHexLength is the minimum length of a hex-encoded blob: the fixed
// header (salt + nonce + tag) with an empty ciphertext.
const MinBlobHexLength = ciphertextOffset * 2
