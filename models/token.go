package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token issued on login.
//
// The custom "id" and "email" claims identify the user; expiry and the
// other registered claims come from [jwt.RegisteredClaims].
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed access token together with the claims it carries.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Claims is the decoded payload.
	Claims Claims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
