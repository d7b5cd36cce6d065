package models

import "time"

// Step is a unit of work inside a journey. It carries no owner field;
// its effective owner is always the parent journey's owner.
type Step struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	JourneyID   int64     `json:"journey_id"`
}
