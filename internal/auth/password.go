package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with configured cost.
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

// ComparePassword verifies a password against its hashed value in constant time.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// HashCost reports the cost a hash was generated with. A malformed hash yields
// fallback, or bcrypt.DefaultCost when fallback is out of range.
func HashCost(hashed string, fallback int) int {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err == nil {
		return cost
	}
	if fallback < bcrypt.MinCost || fallback > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return fallback
}
