package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "admin@example.com", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTService_WrongSecret(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	other := NewJWTService("other-secret", time.Hour)

	token, err := service.GenerateToken(uuid.New(), "admin@example.com", "admin")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	service.expiry = -time.Minute
	token, err := service.GenerateToken(uuid.New(), "admin@example.com", "admin")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_DefaultExpiry(t *testing.T) {
	service := NewJWTService("test-secret", 0)
	assert.Equal(t, DefaultTokenExpiry, service.expiry)
}
