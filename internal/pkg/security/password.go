package security

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a one-way bcrypt digest of the plaintext. The digest
// embeds its cost parameters, so digests written with an older cost keep
// verifying after the default changes.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(bytes), err
}

// VerifyPassword compares the given password with the stored digest.
// bcrypt's comparison is constant-time over the digest.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}
