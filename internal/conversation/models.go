package conversation

import (
	"time"
)

// Sentiment classifies a conversation's customer sentiment
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// IsValid checks if the sentiment is one of the known values
func (s Sentiment) IsValid() bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

// Canonical status values. Status is deliberately a free string: the UI
// suite sends arbitrary statuses and the store tolerates them.
const (
	StatusPending   = "pending"
	StatusResolved  = "resolved"
	StatusCompleted = "completed"
	StatusEscalated = "escalated"
)

// Message is one turn in a conversation's history
type Message struct {
	Role      string     `json:"role"`
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Conversation represents one customer interaction record
type Conversation struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	CustomerName string    `json:"customerName"`
	AgentName    string    `json:"agentName"`
	AgentID      *string   `json:"agentId"`
	Sentiment    Sentiment `json:"sentiment"`
	Status       string    `json:"status"`
	AIScore      int       `json:"aiScore"`
	Duration     int       `json:"duration"`
	CreatedAt    time.Time `json:"createdAt"`
	Messages     []Message `json:"messages"`
}

// clone returns a copy safe to hand outside the store lock. Messages is the
// only mutable reference held by a record.
func (c *Conversation) clone() *Conversation {
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return &out
}

// CreateConversationRequest carries the optional fields a client may supply
// on create. Every field has a server-side default; id and createdAt are
// always generated and never read from the client.
type CreateConversationRequest struct {
	Title        *string    `json:"title"`
	CustomerName *string    `json:"customerName"`
	AgentName    *string    `json:"agentName"`
	AgentID      *string    `json:"agentId"`
	Sentiment    *Sentiment `json:"sentiment"`
	Status       *string    `json:"status"`
	AIScore      *int       `json:"aiScore"`
	Duration     *int       `json:"duration"`
	Messages     []Message  `json:"messages"`
}

// ToConversation applies the create defaults. The caller fills in ID and
// CreatedAt.
func (r *CreateConversationRequest) ToConversation() *Conversation {
	c := &Conversation{
		Title:        "New Conversation",
		CustomerName: "Unknown Customer",
		AgentName:    "Unassigned",
		Sentiment:    SentimentNeutral,
		Status:       StatusPending,
		AIScore:      50,
		Duration:     0,
		Messages:     []Message{},
	}

	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.CustomerName != nil {
		c.CustomerName = *r.CustomerName
	}
	if r.AgentName != nil {
		c.AgentName = *r.AgentName
	}
	if r.AgentID != nil {
		c.AgentID = r.AgentID
	}
	if r.Sentiment != nil {
		c.Sentiment = *r.Sentiment
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.AIScore != nil {
		c.AIScore = clampScore(*r.AIScore)
	}
	if r.Duration != nil && *r.Duration >= 0 {
		c.Duration = *r.Duration
	}
	if r.Messages != nil {
		c.Messages = r.Messages
	}

	return c
}

// UpdateConversationRequest is a typed patch: only fields present in the
// body are merged onto the record. ID and CreatedAt have no patch field, so
// they can never be overwritten.
type UpdateConversationRequest struct {
	Title        *string    `json:"title"`
	CustomerName *string    `json:"customerName"`
	AgentName    *string    `json:"agentName"`
	AgentID      *string    `json:"agentId"`
	Sentiment    *Sentiment `json:"sentiment"`
	Status       *string    `json:"status"`
	AIScore      *int       `json:"aiScore"`
	Duration     *int       `json:"duration"`
}

// applyTo merges the present fields onto the record.
func (r *UpdateConversationRequest) applyTo(c *Conversation) {
	if r.Title != nil {
		c.Title = *r.Title
	}
	if r.CustomerName != nil {
		c.CustomerName = *r.CustomerName
	}
	if r.AgentName != nil {
		c.AgentName = *r.AgentName
	}
	if r.AgentID != nil {
		c.AgentID = r.AgentID
	}
	if r.Sentiment != nil {
		c.Sentiment = *r.Sentiment
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.AIScore != nil {
		c.AIScore = clampScore(*r.AIScore)
	}
	if r.Duration != nil && *r.Duration >= 0 {
		c.Duration = *r.Duration
	}
}

// AppendMessageRequest represents the body of a message-append request
type AppendMessageRequest struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ListFilter holds the conjunctive listing predicates plus pagination. A nil
// field means the predicate is absent; malformed query values never reach
// this struct (the HTTP layer drops them during parsing).
type ListFilter struct {
	Sentiment *Sentiment
	Status    *string
	AgentID   *string
	Search    *string
	MinScore  *int
	MaxScore  *int
	Page      int
	Limit     int
}

// Normalize coerces pagination to positive values with the documented
// defaults (page 1, limit 10).
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
