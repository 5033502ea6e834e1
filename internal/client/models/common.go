package models

// PaginationMeta describes one page of a paginated listing.
type PaginationMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PaginatedResponse is the envelope the backend uses for paginated listings.
type PaginatedResponse[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}
