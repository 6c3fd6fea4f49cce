package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/advent2024/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongIssuer    = errors.New("token issued by another issuer")
	ErrMissingSubject = errors.New("token has no subject")
)

// JwtService handles JWT operations.
// Implements i.Tokenizer.
type JwtService struct {
	secretKey string
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) i.Tokenizer {
	return &JwtService{
		secretKey: secretKey,
		issuer:    issuer,
	}
}

// Generate creates a JWT for subject.
func (s *JwtService) Generate(subject string, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.StandardClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(expTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode parses and validates a JWT, returning its subject if valid.
func (s *JwtService) Decode(tokenString string) (string, error) {
	var claims jwt.StandardClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, s.getSigningKey)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return "", ErrWrongIssuer
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return []byte(s.secretKey), nil
}
