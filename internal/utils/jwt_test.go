package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(7, "admin@tehnoshop.rs")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "admin@tehnoshop.rs" {
		t.Fatalf("claims lost in round trip: %+v", claims)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("secret-a")
	token, err := GenerateJWT(1, "admin@tehnoshop.rs")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	SetJWTSecret("secret-b")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected rejection for token signed with a different secret")
	}
}
