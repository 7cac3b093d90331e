package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	token, err := Generate("secreto", 3, 1, "Cajero", "superventas-pos", 30)
	require.NoError(t, err)

	claims, err := Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, 3, claims.UserID)
	assert.Equal(t, 1, claims.CompanyID)
	assert.Equal(t, "Cajero", claims.Role)
	assert.Equal(t, "3", claims.Subject)
	assert.Equal(t, "superventas-pos", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secreto", 1, 1, "Owner", "x", 30)
	require.NoError(t, err)

	_, err = Parse("otro-secreto", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 1, 1, "Owner", "x", 30)
	assert.Error(t, err)
}

func TestParse_TokenBasura(t *testing.T) {
	_, err := Parse("secreto", "no-es-un-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
