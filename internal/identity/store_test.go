package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	store := NewStore()

	id, err := store.Authenticate("admin@crestastream.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Role)
	assert.Equal(t, "Admin User", id.DisplayName)

	_, err = store.Authenticate("admin@crestastream.com", "wrong")
	assert.Error(t, err)

	_, err = store.Authenticate("nobody@crestastream.com", "admin123")
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	store := NewStoreWith([]*Identity{
		{Email: "qa@crestastream.com", Password: "qa", Role: "agent", DisplayName: "QA"},
	})

	id, err := store.Get("qa@crestastream.com")
	require.NoError(t, err)
	assert.Equal(t, "agent", id.Role)

	_, err = store.Get("missing@crestastream.com")
	assert.Error(t, err)
}
