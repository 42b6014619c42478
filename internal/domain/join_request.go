package domain

import "time"

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "pending"
	JoinRequestStatusApproved JoinRequestStatus = "approved"
	JoinRequestStatusRejected JoinRequestStatus = "rejected"
)

// ValidDecision reports whether the status is a terminal state an admin
// may move a pending request into.
func (s JoinRequestStatus) ValidDecision() bool {
	return s == JoinRequestStatusApproved || s == JoinRequestStatusRejected
}

type JoinRequest struct {
	ID          int32             `json:"id"`
	ProjectID   int32             `json:"project_id"`
	User        UserRef           `json:"user"`
	Status      JoinRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requested_at"`
}

// JoinRequestSummary is the flattened listing form: one entry per request,
// carrying enough project context to render it without another lookup.
type JoinRequestSummary struct {
	ProjectID   int32             `json:"project_id"`
	ProjectName string            `json:"project_name"`
	User        *UserRef          `json:"user,omitempty"`
	Status      JoinRequestStatus `json:"status"`
	RequestedAt time.Time         `json:"requested_at"`
}
