package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efecagatay/CrestaStream-TestAutomation/internal/conversation"
)

func record(sentiment conversation.Sentiment, status string, score, duration int) *conversation.Conversation {
	return &conversation.Conversation{
		Sentiment: sentiment,
		Status:    status,
		AIScore:   score,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}
}

func TestComputeMetricsEmptyStore(t *testing.T) {
	m := ComputeMetrics(nil)

	assert.Equal(t, 0, m.TotalConversations)
	assert.Equal(t, 0, m.AverageAIScore)
	assert.Equal(t, 0, m.ResolutionRate)
	assert.Equal(t, 0, m.AverageHandleTime)
}

func TestComputeMetricsCountsAndAverages(t *testing.T) {
	snapshot := []*conversation.Conversation{
		record(conversation.SentimentPositive, conversation.StatusResolved, 80, 100),
		record(conversation.SentimentPositive, conversation.StatusCompleted, 90, 200),
		record(conversation.SentimentNegative, conversation.StatusEscalated, 20, 400),
		record(conversation.SentimentNeutral, conversation.StatusPending, 55, 300),
	}

	m := ComputeMetrics(snapshot)

	assert.Equal(t, 4, m.TotalConversations)
	assert.Equal(t, 2, m.PositiveCount)
	assert.Equal(t, 1, m.NegativeCount)
	assert.Equal(t, 1, m.NeutralCount)
	assert.Equal(t, 61, m.AverageAIScore, "(80+90+20+55)/4 = 61.25 rounds to 61")
	assert.Equal(t, 50, m.ResolutionRate, "resolved and completed both count")
	assert.Equal(t, 250, m.AverageHandleTime)
}

func TestComputeMetricsRoundsToNearest(t *testing.T) {
	snapshot := []*conversation.Conversation{
		record(conversation.SentimentNeutral, conversation.StatusResolved, 50, 1),
		record(conversation.SentimentNeutral, conversation.StatusPending, 51, 2),
		record(conversation.SentimentNeutral, conversation.StatusPending, 51, 2),
	}

	m := ComputeMetrics(snapshot)

	assert.Equal(t, 51, m.AverageAIScore, "152/3 = 50.67 rounds to 51")
	assert.Equal(t, 33, m.ResolutionRate, "1/3 = 33.3% rounds to 33")
	assert.Equal(t, 2, m.AverageHandleTime, "5/3 = 1.67 rounds to 2")
}

func TestComputeMetricsUnknownSentimentCountsAsNeutral(t *testing.T) {
	snapshot := []*conversation.Conversation{
		record(conversation.Sentiment("confused"), conversation.StatusPending, 50, 0),
	}

	m := ComputeMetrics(snapshot)
	assert.Equal(t, 1, m.NeutralCount)
}

func TestComputeBuildsFullReport(t *testing.T) {
	store := conversation.NewInMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Create(ctx, &conversation.CreateConversationRequest{})
		require.NoError(t, err)
	}

	report := NewAggregator(store).Compute(ctx)

	assert.Equal(t, 3, report.TotalConversations)
	assert.False(t, report.LastUpdated.IsZero())
	require.Len(t, report.Trends, 7)

	today := time.Now().UTC().Format("2006-01-02")
	last := report.Trends[len(report.Trends)-1]
	assert.Equal(t, today, last.Date)
	assert.Equal(t, 3, last.Conversations, "records created now land in today's bucket")
}
