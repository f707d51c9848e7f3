package models

import "time"

// Budget is one entry of the append-only budget log. Only the newest entry
// is ever read back.
type Budget struct {
	ID        string    `json:"_id,omitempty"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsSet reports whether b is a stored record rather than the zero-amount
// placeholder returned when no budget exists.
func (b Budget) IsSet() bool {
	return b.ID != ""
}
