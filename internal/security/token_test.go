package security

import (
	"testing"
	"time"
)

func TestMintAndParseUserToken(t *testing.T) {
	token, errMint := MintUserToken("test-secret", 42, time.Hour)
	if errMint != nil {
		t.Fatalf("mint token: %v", errMint)
	}

	claims, errParse := ParseUserToken("test-secret", token)
	if errParse != nil {
		t.Fatalf("parse token: %v", errParse)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
}

func TestParseUserToken_WrongSecret(t *testing.T) {
	token, errMint := MintUserToken("test-secret", 42, time.Hour)
	if errMint != nil {
		t.Fatalf("mint token: %v", errMint)
	}

	if _, errParse := ParseUserToken("other-secret", token); errParse == nil {
		t.Fatalf("expected parse with wrong secret to fail")
	}
}

func TestParseUserToken_Expired(t *testing.T) {
	token, errMint := MintUserToken("test-secret", 42, -time.Minute)
	if errMint != nil {
		t.Fatalf("mint token: %v", errMint)
	}

	if _, errParse := ParseUserToken("test-secret", token); errParse == nil {
		t.Fatalf("expected expired token to fail validation")
	}
}

func TestMintUserToken_EmptySecret(t *testing.T) {
	if _, errMint := MintUserToken("", 42, time.Hour); errMint == nil {
		t.Fatalf("expected empty secret to be rejected")
	}
}
