// Package auth verifies locally issued HS256 bearer tokens. It stands in
// for the hosted identity provider in development and tests.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/clearcare-backend/internal/domain"
)

// JWTVerifier issues and validates HS256 identity tokens.
type JWTVerifier struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTVerifier creates a new JWT verifier.
// secret must be at least 32 characters for HS256 security.
func NewJWTVerifier(secret string, issuer string, ttl time.Duration) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// identityClaims extends standard JWT claims with the account email.
type identityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// GenerateToken creates a signed HS256 JWT with uid as subject and email as a custom claim.
func (v *JWTVerifier) GenerateToken(uid, email string) (string, error) {
	if uid == "" {
		return "", fmt.Errorf("uid is empty")
	}

	now := time.Now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    v.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken parses and validates a token and returns the identity it names.
func (v *JWTVerifier) VerifyToken(_ context.Context, tokenString string) (domain.Identity, error) {
	if tokenString == "" {
		return domain.Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &identityClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*identityClaims)
	if !ok || !token.Valid {
		return domain.Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return domain.Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return domain.Identity{}, fmt.Errorf("token has no subject")
	}

	return domain.Identity{UID: claims.Subject, Email: claims.Email}, nil
}
