package conversation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedAgent is the slice of agent reference data the seeder needs. Defined
// here so the agent package stays a leaf.
type SeedAgent struct {
	ID   string
	Name string
}

var seedTitles = []string{
	"Billing dispute on invoice",
	"Password reset loop",
	"Upgrade plan inquiry",
	"Shipment never arrived",
	"App crashes on login",
	"Refund request",
}

var seedCustomers = []string{
	"Jordan Ellis",
	"Casey Tran",
	"Morgan Reyes",
	"Riley Okafor",
	"Dana Petrov",
	"Alex Kim",
}

var seedSentiments = []Sentiment{SentimentNeutral, SentimentPositive, SentimentNegative}

var seedStatuses = []string{StatusPending, StatusResolved, StatusCompleted, StatusEscalated}

// Seed loads n deterministic sample conversations so the UI suite has data
// on first render. Records are backdated across the trailing week, newest
// first, and cycle through the given agent roster.
func Seed(s *InMemoryStore, agents []SeedAgent, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for i := 0; i < n; i++ {
		c := &Conversation{
			ID:           uuid.New().String(),
			Title:        fmt.Sprintf("%s #%d", seedTitles[i%len(seedTitles)], i+1),
			CustomerName: seedCustomers[i%len(seedCustomers)],
			AgentName:    "Unassigned",
			Sentiment:    seedSentiments[i%len(seedSentiments)],
			Status:       seedStatuses[i%len(seedStatuses)],
			AIScore:      35 + (i*9)%60,
			Duration:     120 + (i*47)%600,
			CreatedAt:    now.Add(-time.Duration(i) * 13 * time.Hour),
			Messages:     []Message{},
		}

		if len(agents) > 0 {
			a := agents[i%len(agents)]
			id := a.ID
			c.AgentID = &id
			c.AgentName = a.Name
		}

		ts := c.CreatedAt
		c.Messages = append(c.Messages,
			Message{Role: "customer", Text: "Hi, I need help with my account.", Timestamp: &ts},
			Message{Role: "agent", Text: "Of course, let me take a look.", Timestamp: &ts},
		)

		s.ordered = append(s.ordered, c)
		s.byID[c.ID] = c
	}
}
