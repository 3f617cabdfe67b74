package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for lookups on an unknown conversation id.
var ErrNotFound = fmt.Errorf("conversation not found")

// InMemoryStore implements ConversationStore with a mutex-guarded slice.
// Records are kept most-recent-first: creates prepend, and listing returns
// the slice order as-is. byID indexes the same records for O(1) lookup.
type InMemoryStore struct {
	mu      sync.RWMutex
	ordered []*Conversation
	byID    map[string]*Conversation
}

var _ ConversationStore = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty conversation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID: make(map[string]*Conversation),
	}
}

// Create builds a record from the request with server-side defaults, assigns
// a generated id and creation time, and prepends it to the collection.
func (s *InMemoryStore) Create(ctx context.Context, req *CreateConversationRequest) (*Conversation, error) {
	c := req.ToConversation()
	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ordered = append([]*Conversation{c}, s.ordered...)
	s.byID[c.ID] = c

	return c.clone(), nil
}

// List applies the filter predicates conjunctively, then slices the filtered
// sequence with offset/limit pagination. The returned count is the
// pre-pagination filtered total. Out-of-range pages yield an empty slice.
func (s *InMemoryStore) List(ctx context.Context, filter *ListFilter) ([]*Conversation, int, error) {
	filter.Normalize()

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*Conversation, 0, len(s.ordered))
	for _, c := range s.ordered {
		if matches(c, filter) {
			filtered = append(filtered, c)
		}
	}

	total := len(filtered)

	start := (filter.Page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}

	page := make([]*Conversation, 0, end-start)
	for _, c := range filtered[start:end] {
		page = append(page, c.clone())
	}

	return page, total, nil
}

// Get retrieves a conversation by id.
func (s *InMemoryStore) Get(ctx context.Context, id string) (*Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c.clone(), nil
}

// Update shallow-merges the patch onto the record. Fields absent from the
// patch are untouched; id and createdAt are not patchable.
func (s *InMemoryStore) Update(ctx context.Context, id string, req *UpdateConversationRequest) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	req.applyTo(c)
	return c.clone(), nil
}

// Delete removes the record if present and reports whether it existed.
func (s *InMemoryStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false, nil
	}

	delete(s.byID, id)
	for i, c := range s.ordered {
		if c.ID == id {
			s.ordered = append(s.ordered[:i], s.ordered[i+1:]...)
			break
		}
	}

	return true, nil
}

// AppendMessage appends one entry to the record's message sequence with the
// current time. Role defaults to "customer" when absent.
func (s *InMemoryStore) AppendMessage(ctx context.Context, id string, req *AppendMessageRequest) (*Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}

	now := time.Now().UTC()
	c.Messages = append(c.Messages, Message{
		Role:      role,
		Text:      req.Text,
		Timestamp: &now,
	})

	return c.clone(), nil
}

// Snapshot returns a copy of every record in store order, for the metrics
// aggregator.
func (s *InMemoryStore) Snapshot(ctx context.Context) []*Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Conversation, 0, len(s.ordered))
	for _, c := range s.ordered {
		out = append(out, c.clone())
	}
	return out
}

// Count returns the number of records, used by the health endpoint.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ordered)
}

// matches evaluates every present predicate; all must hold.
func matches(c *Conversation, f *ListFilter) bool {
	if f.Sentiment != nil && c.Sentiment != *f.Sentiment {
		return false
	}
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.AgentID != nil {
		if c.AgentID == nil || *c.AgentID != *f.AgentID {
			return false
		}
	}
	if f.Search != nil {
		term := strings.ToLower(*f.Search)
		title := strings.ToLower(c.Title)
		customer := strings.ToLower(c.CustomerName)
		if !strings.Contains(title, term) && !strings.Contains(customer, term) {
			return false
		}
	}
	if f.MinScore != nil && c.AIScore < *f.MinScore {
		return false
	}
	if f.MaxScore != nil && c.AIScore > *f.MaxScore {
		return false
	}
	return true
}
