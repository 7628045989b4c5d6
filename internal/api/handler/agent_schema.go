package handler

import (
	"github.com/policedept/records-system/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the central HTTP
// error handler; it exists here for the swagger definitions.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// agentRequest is the full mutable field set, used by create and replace.
type agentRequest struct {
	Name              string `json:"name"              validate:"required,notblank,person_name"`
	Role              string `json:"role"              validate:"required,notblank"`
	IncorporationDate string `json:"incorporationDate" validate:"required,calendar_date"`
}

// agentPatchRequest uses pointers so absent fields can be told apart from
// zero values.
type agentPatchRequest struct {
	Name              *string `json:"name"`
	Role              *string `json:"role"`
	IncorporationDate *string `json:"incorporationDate"`
}

// agentFields is the patch allow-list.
var agentFields = []string{"name", "role", "incorporationDate"}

// agentResponse is the wire shape of an agent. The date is rendered at day
// granularity, not as a full timestamp.
type agentResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	IncorporationDate string `json:"incorporationDate"`
}

func toAgentResponse(a *domain.Agent) agentResponse {
	return agentResponse{
		ID:                a.ID,
		Name:              a.Name,
		Role:              a.Role,
		IncorporationDate: a.IncorporationDate.Format(domain.DateLayout),
	}
}

func toAgentListResponse(agents []domain.Agent) []agentResponse {
	out := make([]agentResponse, len(agents))
	for i := range agents {
		out[i] = toAgentResponse(&agents[i])
	}
	return out
}
