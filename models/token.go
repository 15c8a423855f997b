package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token with convenience accessors used by the
// authentication flow.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header. UserID is a cached copy of the "sub" (subject) claim, populated by
// [ParseToken] to avoid repeated claim lookups.
type Token struct {
	// Token is the underlying JWT token used for claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the issuing process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"access_token"`

	// TokenType is the authentication scheme reported by the server,
	// normally "bearer".
	TokenType string `json:"token_type,omitempty"`

	// UserID is the subject extracted from the "sub" claim.
	UserID string `json:"-"`
}

// ParseToken parses signedString without verifying its signature and returns
// a Token with the subject claim cached in UserID.
//
// Signature verification is the server's job; the client only needs claim
// access (for example to show the logged-in user). Returns an error if the
// compact form cannot be parsed or the subject claim is missing.
func ParseToken(signedString string) (Token, error) {
	token, _, err := jwt.NewParser().ParseUnverified(signedString, &jwt.RegisteredClaims{})
	if err != nil {
		return Token{}, fmt.Errorf("error parsing JWT token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return Token{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	return Token{Token: token, SignedString: signedString, UserID: subject}, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
