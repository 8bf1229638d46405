package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secreto", "admin", "operator", "inventario-bom", 5)
	require.NoError(t, err)

	username, role, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
	assert.Equal(t, "operator", role)
}

func TestParse_Errors(t *testing.T) {
	token, err := Generate("secreto", "admin", "operator", "inventario-bom", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)

	expired, err := Generate("secreto", "admin", "operator", "inventario-bom", -1)
	require.NoError(t, err)
	_, _, err = Parse("secreto", expired)
	assert.Error(t, err)

	_, err = Generate("", "admin", "operator", "x", 5)
	assert.Error(t, err)
}
