package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest of plain. The salt is
// random per call, so equal inputs yield different digests.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches digest. It returns false
// for any mismatch or malformed digest.
func VerifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
