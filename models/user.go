package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	City         string    `db:"city" json:"city"`
	InterestsRaw string    `db:"interests" json:"-"` // JSON string, e.g. ["Education","Ecology"]
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Interests parses the stored interests column into category names.
// An empty or malformed column yields an empty slice, never an error.
func (u *User) Interests() []string {
	if u.InterestsRaw == "" {
		return []string{}
	}

	var interests []string
	if err := json.Unmarshal([]byte(u.InterestsRaw), &interests); err != nil {
		return []string{}
	}
	return interests
}

// HasInterest reports whether the user declared the given category name.
func (u *User) HasInterest(category string) bool {
	for _, name := range u.Interests() {
		if name == category {
			return true
		}
	}
	return false
}
