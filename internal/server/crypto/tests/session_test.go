package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/dmpolyakov/todolist/internal/server/crypto"
)

func tokenConfig() crypto.SessionTokenConfig {
	return crypto.SessionTokenConfig{
		Issuer:     "todolist",
		SigningKey: "supersecretkeysupersecretkey123456",
		TTL:        time.Hour,
	}
}

// подпись и разбор
func TestSessionToken_RoundTrip(t *testing.T) {
	cfg := tokenConfig()
	sessID := uuid.New()

	token, err := crypto.NewSessionToken(sessID, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := crypto.ParseSessionToken(token, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sessID {
		t.Fatalf("expected %v, got %v", sessID, got)
	}
}

// чужой ключ подписи
func TestParseSessionToken_WrongKey(t *testing.T) {
	cfg := tokenConfig()

	token, err := crypto.NewSessionToken(uuid.New(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := cfg
	other.SigningKey = "anothersecretkeyanothersecretkey12"

	if _, err := crypto.ParseSessionToken(token, other); err == nil {
		t.Fatalf("expected error for wrong signing key")
	}
}

// чужой issuer
func TestParseSessionToken_WrongIssuer(t *testing.T) {
	cfg := tokenConfig()

	token, err := crypto.NewSessionToken(uuid.New(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"

	if _, err := crypto.ParseSessionToken(token, other); err == nil {
		t.Fatalf("expected error for wrong issuer")
	}
}

// истёкший токен
func TestParseSessionToken_Expired(t *testing.T) {
	cfg := tokenConfig()
	cfg.TTL = -time.Minute

	token, err := crypto.NewSessionToken(uuid.New(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := crypto.ParseSessionToken(token, tokenConfig()); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

// мусор
func TestParseSessionToken_Garbage(t *testing.T) {
	if _, err := crypto.ParseSessionToken("garbage", tokenConfig()); err == nil {
		t.Fatalf("expected error for garbage token")
	}
}
