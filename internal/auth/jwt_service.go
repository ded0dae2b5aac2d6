package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is the duration for which issued tokens are valid. Tokens are
// stateless and unrevocable; logout is client-side token discard.
const TokenExpiry = 7 * 24 * time.Hour

var (
	// ErrTokenExpired is returned when the signature is valid but the clock
	// is past expiry. Distinguished from ErrTokenMalformed for diagnostics
	// only; both surface as the same unauthorized outcome.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned for structurally invalid tokens and
	// signature mismatches.
	ErrTokenMalformed = errors.New("invalid token")
)

// Claims represents JWT claims; the subject is the practitioner id.
type Claims struct {
	jwt.RegisteredClaims
}

// JWTService handles token generation and validation with a process-wide secret.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// GenerateToken mints a signed token for the given practitioner id.
func (s *JWTService) GenerateToken(practitionerID string) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   practitionerID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates a token and returns the embedded practitioner id.
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}
