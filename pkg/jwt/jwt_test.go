package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/commodity-flow/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testProfileID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "commodity-flow-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testProfileID, testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	profileID, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testProfileID, profileID)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testProfileID, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testProfileID, testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_ProfileVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testIssuer, 60)
	assert.Error(t, err)
}
