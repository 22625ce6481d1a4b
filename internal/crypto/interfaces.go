package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into salted one-way digests and checks
// candidate passwords against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns the salted digest of password. The digest embeds its own
	// salt and cost, so it is the only thing that has to be stored.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and ErrPasswordMismatch
	// otherwise. An empty hash is compared against an internal dummy digest,
	// so callers can spend the same time on unknown accounts as on known ones.
	Compare(hash, password string) error
}
