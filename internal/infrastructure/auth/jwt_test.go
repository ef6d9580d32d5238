package auth

import (
	"testing"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 15)

	token, err := service.Generate(42)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := service.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Verify() user_id = %d, want 42", claims.UserID)
	}
}

func TestJWTService_VerifyInvalidTokens(t *testing.T) {
	service := NewJWTService("test-secret", 15)

	otherSecret := NewJWTService("other-secret", 15)
	foreign, _ := otherSecret.Generate(42)

	expired := NewJWTService("test-secret", -1)
	expiredToken, _ := expired.Generate(42)

	missingSubject, _ := service.Generate(0)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not.a.token"},
		{"wrong secret", foreign},
		{"expired", expiredToken},
		{"missing user identity", missingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			if err == nil {
				t.Errorf("Verify() expected error for token %q", tt.token)
			}
		})
	}
}
