package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	token, err := service.Generate("alice@example.com", authorization.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one", 60).Generate("alice@example.com", authorization.RoleUser)
	require.NoError(t, err)

	_, err = NewJWTService("secret-two", 60).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	service := NewJWTService("test-secret", -1)

	token, err := service.Generate("alice@example.com", authorization.RoleUser)
	require.NoError(t, err)

	_, err = service.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}
