package metrics

import (
	"context"
	"math"
	"time"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/conversation"
)

// Metrics holds the derived statistics over the entire conversation store.
// Averages and rates are rounded to the nearest integer and defined as 0 on
// an empty store.
type Metrics struct {
	TotalConversations int `json:"totalConversations"`
	PositiveCount      int `json:"positiveCount"`
	NegativeCount      int `json:"negativeCount"`
	NeutralCount       int `json:"neutralCount"`
	AverageAIScore     int `json:"averageAiScore"`
	ResolutionRate     int `json:"resolutionRate"`
	AverageHandleTime  int `json:"averageHandleTime"`
}

// TrendPoint is one day of conversation volume.
type TrendPoint struct {
	Date          string `json:"date"`
	Conversations int    `json:"conversations"`
}

// Report is the full /metrics payload: the aggregate metrics plus a
// trailing-week volume trend and the computation timestamp.
type Report struct {
	Metrics
	Trends      []TrendPoint `json:"trends"`
	LastUpdated time.Time    `json:"lastUpdated"`
}

// Aggregator computes metrics on demand from a store snapshot. It holds the
// store read-only and keeps no state of its own.
type Aggregator struct {
	store conversation.ConversationStore
}

// NewAggregator creates an aggregator over the given store.
func NewAggregator(store conversation.ConversationStore) *Aggregator {
	return &Aggregator{store: store}
}

// Compute builds a fresh report from the current store contents.
func (a *Aggregator) Compute(ctx context.Context) *Report {
	snapshot := a.store.Snapshot(ctx)
	return &Report{
		Metrics:     ComputeMetrics(snapshot),
		Trends:      computeTrends(snapshot, time.Now().UTC()),
		LastUpdated: time.Now().UTC(),
	}
}

// ComputeMetrics derives the aggregate statistics from a snapshot. Counts
// and rates cover every record, not any filtered subset.
func ComputeMetrics(snapshot []*conversation.Conversation) Metrics {
	m := Metrics{TotalConversations: len(snapshot)}
	if len(snapshot) == 0 {
		return m
	}

	var scoreSum, durationSum, resolved int
	for _, c := range snapshot {
		switch c.Sentiment {
		case conversation.SentimentPositive:
			m.PositiveCount++
		case conversation.SentimentNegative:
			m.NegativeCount++
		default:
			m.NeutralCount++
		}

		if c.Status == conversation.StatusResolved || c.Status == conversation.StatusCompleted {
			resolved++
		}

		scoreSum += c.AIScore
		durationSum += c.Duration
	}

	total := float64(len(snapshot))
	m.AverageAIScore = int(math.Round(float64(scoreSum) / total))
	m.ResolutionRate = int(math.Round(float64(resolved) / total * 100))
	m.AverageHandleTime = int(math.Round(float64(durationSum) / total))

	return m
}

// computeTrends buckets conversation volume by creation day for the trailing
// 7 days, oldest first.
func computeTrends(snapshot []*conversation.Conversation, now time.Time) []TrendPoint {
	byDay := make(map[string]int)
	for _, c := range snapshot {
		byDay[c.CreatedAt.UTC().Format("2006-01-02")]++
	}

	trends := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		trends = append(trends, TrendPoint{Date: day, Conversations: byDay[day]})
	}
	return trends
}
