package response

import (
	"github.com/google/uuid"

	"tarifario/internal/usecase/queries"
)

type AgentResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
}

func FromAgents(agents []queries.Agent) []AgentResponse {
	out := make([]AgentResponse, len(agents))
	for i, a := range agents {
		out[i] = AgentResponse{ID: a.ID, DisplayName: a.DisplayName, Email: a.Email}
	}
	return out
}
