package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(1, "test@example.com", "Test User", "user", testSecret, 24*time.Hour)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "vendor@example.com", "Vendor", "vendor", testSecret, 24*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, "Vendor", claims.Name)
	assert.Equal(t, "vendor", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(1, "test@example.com", "Test User", "user", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "a-different-secret")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Email:  "test@example.com",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-token", testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_NoExpiry(t *testing.T) {
	// A non-positive expiry disables the expiry claim entirely
	token, err := GenerateToken(1, "test@example.com", "Test User", "user", testSecret, 0)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)

	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
