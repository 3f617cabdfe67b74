package agent

import "fmt"

// Store holds the fixed agent roster. Read-only after construction.
type Store struct {
	ordered []*Agent
	byID    map[string]*Agent
}

// NewStore creates a store with the default seeded roster.
func NewStore() *Store {
	return NewStoreWith(defaultAgents())
}

// NewStoreWith creates a store from an explicit roster.
func NewStoreWith(agents []*Agent) *Store {
	byID := make(map[string]*Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}
	return &Store{ordered: agents, byID: byID}
}

// List returns the full roster in seed order.
func (s *Store) List() []*Agent {
	return s.ordered
}

// Get retrieves an agent by id.
func (s *Store) Get(id string) (*Agent, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("agent %s not found", id)
	}
	return a, nil
}

func defaultAgents() []*Agent {
	return []*Agent{
		{ID: "agent-001", Name: "Maya Chen", Team: "Billing", Status: AgentStatusOnline},
		{ID: "agent-002", Name: "Liam O'Brien", Team: "Technical", Status: AgentStatusOnline},
		{ID: "agent-003", Name: "Priya Nair", Team: "Retention", Status: AgentStatusOffline},
		{ID: "agent-004", Name: "Tom Novak", Team: "Billing", Status: AgentStatusOnline},
	}
}
