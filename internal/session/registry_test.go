package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/identity"
)

func testIdentity() *identity.Identity {
	return &identity.Identity{
		Email:       "admin@crestastream.com",
		Role:        "admin",
		DisplayName: "Admin User",
	}
}

func TestIssueAndResolve(t *testing.T) {
	registry := NewRegistry()
	id := testIdentity()

	pair := registry.Issue(id)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	resolved, err := registry.ResolveAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id.Email, resolved.Email)
}

func TestRefreshTokenDoesNotAuthenticate(t *testing.T) {
	registry := NewRegistry()
	pair := registry.Issue(testIdentity())

	_, err := registry.ResolveAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRotateInvalidatesOldPair(t *testing.T) {
	registry := NewRegistry()
	old := registry.Issue(testIdentity())

	fresh, err := registry.Rotate(old.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, old.AccessToken, fresh.AccessToken)
	assert.NotEqual(t, old.RefreshToken, fresh.RefreshToken)

	// The whole old pair is gone
	_, err = registry.ResolveAccess(old.AccessToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)
	_, err = registry.Rotate(old.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// The new pair works
	_, err = registry.ResolveAccess(fresh.AccessToken)
	assert.NoError(t, err)
}

func TestRotateRejectsAccessToken(t *testing.T) {
	registry := NewRegistry()
	pair := registry.Issue(testIdentity())

	_, err := registry.Rotate(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Presenting the wrong kind must not invalidate the session
	_, err = registry.ResolveAccess(pair.AccessToken)
	assert.NoError(t, err)
}

func TestRevoke(t *testing.T) {
	registry := NewRegistry()
	pair := registry.Issue(testIdentity())

	registry.Revoke(pair.AccessToken)
	_, err := registry.ResolveAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// Revoking an absent token is a no-op
	registry.Revoke("never-issued")
	registry.Revoke(pair.AccessToken)
}

func TestCountTracksLiveBindings(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, 0, registry.Count())

	pair := registry.Issue(testIdentity())
	assert.Equal(t, 2, registry.Count())

	registry.Revoke(pair.AccessToken)
	assert.Equal(t, 1, registry.Count())
}
