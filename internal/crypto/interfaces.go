package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/hasher_mock.go -package=mock

// Credential is a derived password digest together with the salt it was
// derived with. The two are always stored and read as a pair.
type Credential struct {
	Digest string
	Salt   string
}

// Hasher derives and checks salted password digests.
//
// Derivation is a pure function of the plaintext and the salt: the same
// pair always yields the same digest, so a stored credential is checked by
// re-deriving with its salt and comparing the digests.
type Hasher interface {
	// Derive generates a fresh random salt (128 bits, hex-encoded) and
	// derives the digest of plaintext with it.
	Derive(plaintext string) Credential

	// DeriveWithSalt derives the digest of plaintext with an existing salt.
	DeriveWithSalt(plaintext, salt string) Credential

	// Matches reports whether plaintext re-derived with stored.Salt yields
	// stored.Digest. The digest comparison runs in constant time.
	Matches(plaintext string, stored Credential) bool
}
