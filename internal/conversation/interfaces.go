package conversation

import "context"

// ConversationStore defines the operations the HTTP layer and metrics
// aggregator need from the conversation collection.
type ConversationStore interface {
	Create(ctx context.Context, req *CreateConversationRequest) (*Conversation, error)
	List(ctx context.Context, filter *ListFilter) ([]*Conversation, int, error)
	Get(ctx context.Context, id string) (*Conversation, error)
	Update(ctx context.Context, id string, req *UpdateConversationRequest) (*Conversation, error)
	Delete(ctx context.Context, id string) (bool, error)
	AppendMessage(ctx context.Context, id string, req *AppendMessageRequest) (*Conversation, error)
	Snapshot(ctx context.Context) []*Conversation
}
