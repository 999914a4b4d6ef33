package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndValidate(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Sign("user-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").Sign("user-123", time.Hour)
	require.NoError(t, err)

	_, err = NewManager("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Sign("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	m := NewManager("test-secret")

	_, err := m.Validate("not.a.token")
	assert.Error(t, err)
}

func TestValidate_MissingSubject(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Sign("", time.Hour)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
