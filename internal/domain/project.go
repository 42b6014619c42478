package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

type Project struct {
	ID           int32         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       ProjectStatus `json:"status"`
	CreatedBy    int32         `json:"created_by"`
	JoinCode     string        `json:"join_code"`
	Members      []UserRef     `json:"members,omitempty"`
	JoinRequests []JoinRequest `json:"join_requests,omitempty"`
	Meetings     []Meeting     `json:"meetings,omitempty"`
	CreatedOn    time.Time     `json:"created_on"`
	UpdatedOn    time.Time     `json:"updated_on"`
}

type Meeting struct {
	ID        int32     `json:"id"`
	ProjectID int32     `json:"project_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Link      string    `json:"link,omitempty"`
}
