package session

import "github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"

// SessionRegistry defines the token lifecycle operations used by the HTTP
// layer.
type SessionRegistry interface {
	Issue(id *identity.Identity) TokenPair
	ResolveAccess(token string) (*identity.Identity, error)
	Rotate(refreshToken string) (TokenPair, error)
	Revoke(token string)
}
