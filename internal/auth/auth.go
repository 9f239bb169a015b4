// Package auth issues and verifies the admin session credential and
// checks the admin password against its bcrypt hash.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the absolute lifetime of a session token.
const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Gate struct {
	secret []byte
}

// New fails on an empty secret. There is deliberately no built-in
// fallback value: an unset SESSION_SECRET must stop the server at
// startup instead of signing tokens with a known key.
func New(secret string) (*Gate, error) {
	if secret == "" {
		return nil, errors.New("auth: session secret is not set")
	}
	return &Gate{secret: []byte(secret)}, nil
}

// IssueToken signs a session token for the admin identity, valid for
// TokenTTL from now.
func (g *Gate) IssueToken(email, name string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email: email,
		Name:  name,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// VerifyToken validates signature and expiry and returns the decoded
// claims. Malformed, tampered and expired tokens all come back as an
// error; nothing panics past this boundary.
func (g *Gate) VerifyToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

func (g *Gate) TokenValid(token string) bool {
	_, err := g.VerifyToken(token)
	return err == nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
