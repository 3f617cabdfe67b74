package identity

import "fmt"

// Store holds the static email → identity table. Read-only after
// construction, so lookups need no locking.
type Store struct {
	identities map[string]*Identity
}

// NewStore creates a store seeded with the default test accounts used by the
// UI suite.
func NewStore() *Store {
	return NewStoreWith(defaultIdentities())
}

// NewStoreWith creates a store from an explicit identity list.
func NewStoreWith(identities []*Identity) *Store {
	table := make(map[string]*Identity, len(identities))
	for _, id := range identities {
		table[id.Email] = id
	}
	return &Store{identities: table}
}

// Authenticate verifies the email/password pair against the table. Passwords
// are compared verbatim: this service exists only to back browser tests.
func (s *Store) Authenticate(email, password string) (*Identity, error) {
	id, ok := s.identities[email]
	if !ok || id.Password != password {
		return nil, fmt.Errorf("invalid credentials for %s", email)
	}
	return id, nil
}

// Get retrieves an identity by email.
func (s *Store) Get(email string) (*Identity, error) {
	id, ok := s.identities[email]
	if !ok {
		return nil, fmt.Errorf("identity %s not found", email)
	}
	return id, nil
}

func defaultIdentities() []*Identity {
	return []*Identity{
		{Email: "admin@crestastream.com", Password: "admin123", Role: "admin", DisplayName: "Admin User"},
		{Email: "supervisor@crestastream.com", Password: "super123", Role: "supervisor", DisplayName: "Sam Supervisor"},
		{Email: "agent@crestastream.com", Password: "agent123", Role: "agent", DisplayName: "Avery Agent"},
	}
}
