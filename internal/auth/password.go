package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash for an operator password. A cost outside
// bcrypt's supported range falls back to the library default, so a bad
// AUTH_BCRYPT_COST value cannot weaken or break hashing.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its stored hash.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
