package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken("practitioner-42")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "practitioner-42", subject)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	service := NewJWTService("test-secret")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "practitioner-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret")

	valid, err := service.GenerateToken("practitioner-42")
	assert.NoError(t, err)

	otherSecret, err := NewJWTService("other-secret").GenerateToken("practitioner-42")
	assert.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage token", token: "not.a.token"},
		{name: "empty token", token: ""},
		{name: "tampered token", token: valid[:len(valid)-2] + "xx"},
		{name: "wrong secret", token: otherSecret},
		{name: "missing subject", token: noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}
