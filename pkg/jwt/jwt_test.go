package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/rutujaMandapmalvi3/Laika/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "7d3f0c9e-0000-4000-8000-000000000001"
	testEmail  = "ana@example.com"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "ana", "laika-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID())
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, "id", claims.TokenUse)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "ana", "laika-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "ana", "laika-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

// ParseUnverified no valida firma ni expiración: el llamador ya confía en el emisor.
func TestParseUnverified_IgnoraFirmaYExpiracion(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "ana", "laika-test", -1)
	require.NoError(t, err)

	claims, err := pkgjwt.ParseUnverified(tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID())
	assert.True(t, claims.Expired(time.Now()))
}

func TestParseUnverified_TokenBasura(t *testing.T) {
	_, err := pkgjwt.ParseUnverified("no.es.jwt")
	assert.Error(t, err)
}
