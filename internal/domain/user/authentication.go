package user

// PasswordHasher is the port for password hashing and verification. Verify
// must accept hashes produced by every historical scheme still present in
// the store, and must fail with a single generic error regardless of cause.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.passwordHash)
}
