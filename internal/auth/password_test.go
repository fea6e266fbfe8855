package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSenha_Verificar(t *testing.T) {
	hash, err := HashSenha("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, VerificarSenha("senha-secreta", hash))
	assert.False(t, VerificarSenha("senha-errada", hash))
}

func TestHashSenha_Salted(t *testing.T) {
	h1, err := HashSenha("mesma-senha")
	require.NoError(t, err)
	h2, err := HashSenha("mesma-senha")
	require.NoError(t, err)

	// Different salts, different hashes, both verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerificarSenha("mesma-senha", h1))
	assert.True(t, VerificarSenha("mesma-senha", h2))
}

func TestVerificarSenha_MalformedHash(t *testing.T) {
	assert.False(t, VerificarSenha("qualquer", ""))
	assert.False(t, VerificarSenha("qualquer", "not-a-bcrypt-hash"))
}
