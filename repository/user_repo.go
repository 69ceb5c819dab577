package repository

import (
	"database/sql"

	"ngo_discovery/db"
	"ngo_discovery/models"
)

// GetUser loads a user profile by id.
func GetUser(id int64) (*models.User, error) {
	row := db.DB.QueryRow(`
		SELECT id, username, COALESCE(city, ''), COALESCE(interests, ''), created_at, updated_at
		FROM users WHERE id = ?`, id)

	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.City, &u.InterestsRaw, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return u, nil
}
