package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTVerifier_GenerateAndVerify_Success(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", 15*time.Minute)

	token, err := v.GenerateToken("firebase-uid-1", "pat@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	id, err := v.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if id.UID != "firebase-uid-1" {
		t.Errorf("expected uid %q, got %q", "firebase-uid-1", id.UID)
	}
	if id.Email != "pat@example.com" {
		t.Errorf("expected email %q, got %q", "pat@example.com", id.Email)
	}
}

func TestJWTVerifier_NoEmail(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)

	token, err := v.GenerateToken("uid-2", "")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := v.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if id.Email != "" {
		t.Errorf("expected empty email, got %q", id.Email)
	}
}

func TestJWTVerifier_GenerateToken_EmptyUID(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)

	if _, err := v.GenerateToken("", "x@example.com"); err == nil {
		t.Fatal("expected error for empty uid")
	}
}

func TestJWTVerifier_Expired(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", -time.Minute)

	token, err := v.GenerateToken("uid", "")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := v.VerifyToken(context.Background(), token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTVerifier_InvalidSignature(t *testing.T) {
	issuer := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)
	other := NewJWTVerifier("another-secret-that-is-also-32-characters", "clearcare-test", time.Minute)

	token, err := issuer.GenerateToken("uid", "")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.VerifyToken(context.Background(), token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTVerifier_Malformed(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)

	for _, token := range []string{"not-a-jwt", "a.b.c", ""} {
		if _, err := v.VerifyToken(context.Background(), token); err == nil {
			t.Errorf("expected error for malformed token %q", token)
		}
	}
}

func TestJWTVerifier_WrongIssuer(t *testing.T) {
	issuer := NewJWTVerifier(testSecret, "someone-else", time.Minute)
	v := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)

	token, err := issuer.GenerateToken("uid", "")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = v.VerifyToken(context.Background(), token)
	if err == nil {
		t.Fatal("expected error for wrong issuer")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestJWTVerifier_RejectsNoneAlgorithm(t *testing.T) {
	v := NewJWTVerifier(testSecret, "clearcare-test", time.Minute)

	claims := jwt.RegisteredClaims{
		Subject:   "uid",
		Issuer:    "clearcare-test",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	if _, err := v.VerifyToken(context.Background(), token); err == nil {
		t.Fatal("expected error for alg=none token")
	}
}
