package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/plateful/takeaway/internal/domain/model"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(Session{UserID: 42, Role: model.RoleManager})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 42 || session.Role != model.RoleManager {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if _, err := strategy.ParseToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{})
	verifier := NewJWTStrategy("secret-b", Options{})

	token, err := issuer.IssueToken(Session{UserID: 1, Role: model.RoleCustomer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Role: string(model.RoleCustomer),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := strategy.ParseToken(signed); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestJWTStrategyRejectsNonPositiveSubject(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})

	claims := sessionClaims{
		Role: string(model.RoleCustomer),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "0",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := strategy.ParseToken(signed); err != ErrInvalidToken {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "secret" {
		t.Fatal("hash must not equal the password")
	}
	if err := hasher.Compare(hash, "secret"); err != nil {
		t.Fatalf("compare failed on matching password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong"); err == nil {
		t.Fatal("compare must fail on wrong password")
	}
}
