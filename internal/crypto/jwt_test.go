package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(42, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"
	userID := int64(42)

	token, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("ValidateToken() UserID = %d, want %d", claims.UserID, userID)
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken(42, "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateToken(token, "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{"travelplan-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: 42,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	_, err = ValidateToken(tokenString, secret)
	if err == nil {
		t.Error("ValidateToken() expected error for wrong issuer")
	}
}

func TestDecodeUserID(t *testing.T) {
	token, err := GenerateToken(7, "some-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	// Decode must work without knowing the signing secret.
	id, err := DecodeUserID(token)
	if err != nil {
		t.Fatalf("DecodeUserID() unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("DecodeUserID() = %d, want 7", id)
	}
}

func TestDecodeUserIDGarbage(t *testing.T) {
	_, err := DecodeUserID("garbage")
	if err == nil {
		t.Error("DecodeUserID() expected error for garbage token")
	}
}

func TestDecodeUserIDExpiredStillReadable(t *testing.T) {
	token, err := GenerateToken(9, "some-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	// An expired token is still decodable; expiry is the server's problem.
	id, err := DecodeUserID(token)
	if err != nil {
		t.Fatalf("DecodeUserID() unexpected error: %v", err)
	}
	if id != 9 {
		t.Errorf("DecodeUserID() = %d, want 9", id)
	}
}
