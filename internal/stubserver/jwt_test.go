package stubserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	token, err := issueToken("issuer", "user-1", time.Hour, "sign-key")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, "bearer", token.TokenType)

	parsed, err := validateToken(token.SignedString, "sign-key", "issuer")
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestIssueToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", userID: "u", duration: time.Hour, signKey: "k"},
		{name: "empty user id", issuer: "i", duration: time.Hour, signKey: "k"},
		{name: "zero duration", issuer: "i", userID: "u", signKey: "k"},
		{name: "empty sign key", issuer: "i", userID: "u", duration: time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issueToken(tt.issuer, tt.userID, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateToken_WrongKey(t *testing.T) {
	token, err := issueToken("issuer", "user-1", time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = validateToken(token.SignedString, "other-key", "issuer")
	assert.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	token, err := issueToken("issuer", "user-1", time.Hour, "sign-key")
	require.NoError(t, err)

	_, err = validateToken(token.SignedString, "sign-key", "someone-else")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := issueToken("issuer", "user-1", -time.Minute, "sign-key")
	require.NoError(t, err)

	_, err = validateToken(token.SignedString, "sign-key", "issuer")
	assert.Error(t, err)
}
