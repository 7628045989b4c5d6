package handler

import (
	"github.com/policedept/records-system/internal/core/domain"
)

// caseRequest is the full mutable field set, used by create and replace.
type caseRequest struct {
	Title       string `json:"title"       validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Status      string `json:"status"      validate:"required,oneof=open solved"`
	AgentID     int64  `json:"agentId"     validate:"required,gt=0"`
}

// casePatchRequest uses pointers so absent fields can be told apart from
// zero values.
type casePatchRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	AgentID     *int64  `json:"agentId"`
}

// caseFields is the patch allow-list.
var caseFields = []string{"title", "description", "status", "agentId"}

// caseResponse is the wire shape of a case.
type caseResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AgentID     int64  `json:"agentId"`
}

func toCaseResponse(c *domain.Case) caseResponse {
	return caseResponse{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Status:      string(c.Status),
		AgentID:     c.AgentID,
	}
}

func toCaseListResponse(cases []domain.Case) []caseResponse {
	out := make([]caseResponse, len(cases))
	for i := range cases {
		out[i] = toCaseResponse(&cases[i])
	}
	return out
}
