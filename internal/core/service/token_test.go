package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ebuddy/user-api/internal/core/domain"
)

func signClaims(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestJWTTokens_RoundTrip(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	signed, err := tokens.Issue("uid-1", "ann@x.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UID != "uid-1" || claims.Email != "ann@x.com" || claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTTokens_RejectsExpired(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	signed := signClaims(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
		"uid":   "uid-1",
		"email": "ann@x.com",
		"role":  domain.RoleUser,
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	if _, err := tokens.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTTokens_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTTokens("secret-a", time.Hour)
	verifier := NewJWTTokens("secret-b", time.Hour)

	signed, err := issuer.Issue("uid-1", "ann@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTTokens_RejectsWrongAlgorithm(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	signed := signClaims(t, jwt.SigningMethodHS512, "secret", jwt.MapClaims{
		"uid": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	if _, err := tokens.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestJWTTokens_RejectsMalformed(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	if _, err := tokens.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTTokens_RejectsMissingUID(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	signed := signClaims(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
		"email": "ann@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	if _, err := tokens.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken without uid claim, got %v", err)
	}
}

func TestJWTTokens_MissingRoleDefaultsToUser(t *testing.T) {
	tokens := NewJWTTokens("secret", time.Hour)

	signed := signClaims(t, jwt.SigningMethodHS256, "secret", jwt.MapClaims{
		"uid":   "uid-1",
		"email": "ann@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, claims.Role)
	}
}

func TestVerifierChain_FallsBackToLegacySecret(t *testing.T) {
	current := NewJWTTokens("new-secret", time.Hour)
	legacy := NewJWTTokens("old-secret", time.Hour)
	chain := VerifierChain{current, legacy}

	signed, err := legacy.Issue("uid-1", "ann@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := chain.Verify(signed)
	if err != nil {
		t.Fatalf("chain rejected a legacy-signed token: %v", err)
	}
	if claims.UID != "uid-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifierChain_AllFail(t *testing.T) {
	chain := VerifierChain{
		NewJWTTokens("secret-a", time.Hour),
		NewJWTTokens("secret-b", time.Hour),
	}

	signed, err := NewJWTTokens("secret-c", time.Hour).Issue("uid-1", "ann@x.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := chain.Verify(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
