package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer  = "task-manager-api"
	tokenSubject = "api-access"
)

// Claims are the identity claims carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// TokenService issues and verifies signed, time-limited session tokens
// with a single symmetric secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token embedding the user's identity, expiring ttl from
// now.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Email:  email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates signature, algorithm, issuer, and expiry. It is total
// over arbitrary input: malformed, expired, or tampered tokens yield
// (nil, false), never an error or panic.
func (s *TokenService) Verify(raw string) (*Claims, bool) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, false
	}
	return &claims, true
}
