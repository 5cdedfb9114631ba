package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnvAuthenticatorFromEnv(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Setenv("ADMIN_USER", "gerente")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	a := NewEnvAuthenticator()
	assert.True(t, a.Verify("gerente", "senha-forte"))
	assert.False(t, a.Verify("gerente", "senha-errada"))
	assert.False(t, a.Verify("outro", "senha-forte"))
}

func TestEnvAuthenticatorDevDefaults(t *testing.T) {
	t.Setenv("ADMIN_USER", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	a := NewEnvAuthenticator()
	assert.True(t, a.Verify("Admin", "01020304"))
	assert.False(t, a.Verify("Admin", "11111111"))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("Admin")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Admin", claims["sub"])
}

func TestParseTokenRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("Admin")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-a")
	token, err := GenerateToken("Admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "segredo-b")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
