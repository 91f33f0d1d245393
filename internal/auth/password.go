package auth

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a tunable work factor. The salt is generated
// per call and embedded in the digest, so verification only needs the
// digest and the candidate plaintext.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. Costs outside bcrypt's supported range
// fall back to the default work factor.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted one-way digest of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the digest. A malformed
// digest is treated as a non-match rather than an error.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
