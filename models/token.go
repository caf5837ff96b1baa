package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the claim set of an identity token.
//
// The messaging service trusts the token because it is signed with the
// identity provider key registered for the application. Besides the standard
// claims it carries the user ID ("prn") and the nonce ("nce") handed out by
// the service for this authentication attempt.
type IdentityClaims struct {
	jwt.RegisteredClaims

	// Principal is the user ID being authenticated.
	Principal string `json:"prn"`

	// Nonce is the one-time challenge returned by the service.
	Nonce string `json:"nce"`
}

// Token wraps a signed identity token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
