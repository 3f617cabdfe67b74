package agent

// AgentStatus represents an agent's availability
type AgentStatus string

const (
	AgentStatusOnline  AgentStatus = "online"
	AgentStatusOffline AgentStatus = "offline"
)

// Agent is static reference data used to decorate and filter conversations.
// There is no mutating endpoint; the roster is fixed at process start.
type Agent struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Team   string      `json:"team"`
	Status AgentStatus `json:"status"`
}
