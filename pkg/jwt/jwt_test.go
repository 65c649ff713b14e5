package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
}

func TestGenerateToken(t *testing.T) {
	service := NewService("test-secret-key")
	address := "0xabc12345"
	role := "user"

	token, err := service.GenerateToken(address, role)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, len(token), 0)
}

func TestValidateToken(t *testing.T) {
	service := NewService("test-secret-key")
	address := "0xabc12345"
	role := "user"

	// Generate token
	token, err := service.GenerateToken(address, role)
	assert.NoError(t, err)

	// Validate token
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, address, claims.Address)
	assert.Equal(t, role, claims.Role)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	// Invalid token format
	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	address := "0xabc12345"
	role := "user"

	// Generate token with service1
	token, err := service1.GenerateToken(address, role)
	assert.NoError(t, err)

	// Try to validate with service2 (wrong secret)
	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpirationSet(t *testing.T) {
	service := NewService("test-secret-key")
	address := "0xabc12345"

	token, err := service.GenerateToken(address, "user")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestGenerateAndValidateToken_RoundTrip(t *testing.T) {
	service := NewService("test-secret-key")
	address := "0xdef67890"
	role := "user"

	// Generate
	token, err := service.GenerateToken(address, role)
	assert.NoError(t, err)

	// Validate
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, address, claims.Address)
	assert.Equal(t, role, claims.Role)
}

func TestGenerateToken_EmptyValues(t *testing.T) {
	service := NewService("test-secret-key")

	// Generate with empty values should still work
	token, err := service.GenerateToken("", "")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "", claims.Address)
	assert.Equal(t, "", claims.Role)
}
