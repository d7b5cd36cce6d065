package models

import "time"

// Journey is a named container of steps owned by exactly one user.
// UserID is set from the authenticated caller at creation time and
// never changes afterwards.
type Journey struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      int64     `json:"user_id"`
	StepsCount  int       `json:"steps_count,omitempty"`
	Steps       []Step    `json:"steps,omitempty"`
}
