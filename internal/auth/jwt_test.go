package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "ana@example.com", "Empleado")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Empleado", claims.Role)
}

func TestJWTWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)
	other := NewJWTManager("other-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "ana@example.com", "Empleado")
	require.NoError(t, err)

	_, err = other.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("user-1", "ana@example.com", "Empleado")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	_, err := m.ParseAndValidate("not-a-token")
	assert.Error(t, err)
}
