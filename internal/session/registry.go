package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"
)

// Registry is the in-memory token → identity table. It is the sole owner of
// session state; tokens never expire by time and live until logout or
// rotation removes them.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]binding
}

var _ SessionRegistry = (*Registry)(nil)

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		tokens: make(map[string]binding),
	}
}

// Issue generates a fresh access/refresh pair bound to the identity.
func (r *Registry) Issue(id *identity.Identity) TokenPair {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.issueLocked(id)
}

func (r *Registry) issueLocked(id *identity.Identity) TokenPair {
	access := newToken()
	refresh := newToken()

	r.tokens[access] = binding{identity: id, kind: TokenKindAccess, counterpart: refresh}
	r.tokens[refresh] = binding{identity: id, kind: TokenKindRefresh, counterpart: access}

	return TokenPair{AccessToken: access, RefreshToken: refresh}
}

// ResolveAccess looks up an access token. Refresh tokens do not authenticate
// bearer endpoints; presenting one here fails the same way as an unknown
// token.
func (r *Registry) ResolveAccess(token string) (*identity.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.tokens[token]
	if !ok || b.kind != TokenKindAccess {
		return nil, ErrTokenNotFound
	}
	return b.identity, nil
}

// Rotate exchanges a refresh token for a new pair. Both tokens of the old
// pair are removed before the new pair is issued, so a rotated refresh token
// can never be replayed.
func (r *Registry) Rotate(refreshToken string) (TokenPair, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.tokens[refreshToken]
	if !ok || b.kind != TokenKindRefresh {
		return TokenPair{}, fmt.Errorf("rotate: %w", ErrTokenNotFound)
	}

	delete(r.tokens, refreshToken)
	delete(r.tokens, b.counterpart)

	return r.issueLocked(b.identity), nil
}

// Revoke removes a token binding if present. Revoking an absent token is a
// no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}

// Count returns the number of live token bindings, used by the health
// endpoint.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// newToken draws 32 bytes from crypto/rand and hex-encodes them. The tokens
// are opaque and unsigned; 256 bits of entropy makes guessing or collision
// a non-concern for a process-lifetime registry.
func newToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("failed to read random bytes for token: %v", err))
	}
	return hex.EncodeToString(buf)
}
