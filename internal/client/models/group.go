package models

import "time"

// GroupSummary is the short form embedded into tasks.
type GroupSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Group struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Color       string       `json:"color,omitempty"`
	Description string       `json:"description,omitempty"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Members     []UserPublic `json:"members,omitempty"`
}

// GroupWithTasks is returned when a single group is fetched by ID.
type GroupWithTasks struct {
	Group
	Tasks []Task `json:"tasks"`
}

type GroupCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// GroupUpdateRequest is a partial group update; nil fields are left unchanged.
type GroupUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

type GroupMemberRequest struct {
	UserID string `json:"user_id"`
}
