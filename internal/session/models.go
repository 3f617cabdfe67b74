package session

import (
	"errors"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"
)

// ErrTokenNotFound is returned when a token has no binding in the registry.
// Missing tokens are an expected outcome, not a failure; the HTTP layer maps
// this to 401.
var ErrTokenNotFound = errors.New("session token not found")

// TokenKind distinguishes what a token may be used for. Access tokens
// authenticate bearer endpoints; refresh tokens may only be exchanged for a
// new pair via Rotate.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenPair is the result of issuing or rotating a session.
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// binding ties one token to the identity it authenticates. counterpart is
// the other token of the pair so rotation can remove both at once.
type binding struct {
	identity    *identity.Identity
	kind        TokenKind
	counterpart string
}
