package domain

// CaseStatus is the lifecycle state of a case.
type CaseStatus string

const (
	StatusOpen   CaseStatus = "open"
	StatusSolved CaseStatus = "solved"
)

// Valid reports whether s is exactly one of the two allowed values.
// The comparison is case-sensitive.
func (s CaseStatus) Valid() bool {
	return s == StatusOpen || s == StatusSolved
}

// Case is an investigation assigned to an agent. AgentID is a weak reference:
// deleting the agent cascades to its cases at the storage layer.
type Case struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      CaseStatus `json:"status"`
	AgentID     int64      `json:"agentId"`
}
