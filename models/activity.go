package models

import "time"

// Activity types recorded in the history log
const (
	ActivityView              = "view"
	ActivityFavorite          = "favorite"
	ActivityEventRegistration = "event_registration"
	ActivityReview            = "review"
)

type ActivityEntry struct {
	ID           int64     `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	ActivityType string    `db:"activity_type" json:"activity_type"`
	NGOID        int64     `db:"ngo_id" json:"ngo_id,omitempty"`
	EventID      int64     `db:"event_id" json:"event_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
