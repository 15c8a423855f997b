package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  "test",
		Subject: "user-42",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	token, err := ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", token.UserID)
	assert.Equal(t, signed, token.SignedString)
	assert.Equal(t, signed, token.String())
}

func TestParseToken_NotAToken(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
}
