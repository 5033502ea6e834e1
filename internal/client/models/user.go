// Package models defines the data structures exchanged with the taskdeck
// backend and cached locally by the client.
package models

import "time"

// UserStats is the derived productivity summary embedded into a user profile
// when it is requested with include_stats.
type UserStats struct {
	TotalTasks             int     `json:"total_tasks"`
	CompletedTasks         int     `json:"completed_tasks"`
	PendingTasks           int     `json:"pending_tasks"`
	InProgressTasks        int     `json:"in_progress_tasks"`
	TasksThisWeek          int     `json:"tasks_this_week"`
	TasksCompletedThisWeek int     `json:"tasks_completed_this_week"`
	TotalGroups            int     `json:"total_groups"`
	ActivityScore          float64 `json:"activity_score"`
}

// User is the authenticated account's own profile.
type User struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Username            string     `json:"username"`
	FullName            string     `json:"full_name,omitempty"`
	AvatarURL           string     `json:"avatar_url,omitempty"`
	HeaderBackgroundURL string     `json:"header_background_url,omitempty"`
	Bio                 string     `json:"bio,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsSuperuser         bool       `json:"is_superuser"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	Stats               *UserStats `json:"stats,omitempty"`
}

// UserPublic is the reduced profile visible to other users.
type UserPublic struct {
	ID                  string     `json:"id"`
	Username            string     `json:"username"`
	FullName            string     `json:"full_name,omitempty"`
	AvatarURL           string     `json:"avatar_url,omitempty"`
	HeaderBackgroundURL string     `json:"header_background_url,omitempty"`
	Bio                 string     `json:"bio,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	Stats               *UserStats `json:"stats,omitempty"`
}

// UserSummary is the short form embedded into tasks.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
}

// UserUpdateRequest is a partial profile update; nil fields are left unchanged.
type UserUpdateRequest struct {
	Email               *string `json:"email,omitempty"`
	Username            *string `json:"username,omitempty"`
	FullName            *string `json:"full_name,omitempty"`
	AvatarURL           *string `json:"avatar_url,omitempty"`
	HeaderBackgroundURL *string `json:"header_background_url,omitempty"`
	Bio                 *string `json:"bio,omitempty"`
	Password            *string `json:"password,omitempty"`
}

// UserListParams filters the public user listing.
type UserListParams struct {
	Page   int
	Size   int
	Search string
}
