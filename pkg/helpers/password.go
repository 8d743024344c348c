package helpers

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost matches the cost the platform has always used for
// account passwords.
const DefaultBcryptCost = 12

// PasswordHasher hashes and verifies passwords with bcrypt. bcrypt embeds a
// random per-call salt, so hashing the same plaintext twice yields different
// hashes.
type PasswordHasher struct {
	Cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{Cost: cost}
}

// Hash returns the bcrypt hash of plain.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether plain matches the stored bcrypt hash.
func (h *PasswordHasher) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
