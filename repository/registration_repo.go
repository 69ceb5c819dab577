package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// IsRegistered reports whether the user already registered for the event.
func IsRegistered(userID, eventID int64) (bool, error) {
	return exists(`SELECT COUNT(*) FROM event_registrations WHERE user_id = ? AND event_id = ?`, userID, eventID)
}

// CreateRegistration registers a user for an event.
func CreateRegistration(reg *models.EventRegistration) error {
	result, err := db.DB.Exec(`
		INSERT INTO event_registrations (event_id, user_id, name, email, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		reg.EventID, reg.UserID, reg.Name, reg.Email)
	if err != nil {
		return err
	}
	reg.ID, _ = result.LastInsertId()
	return nil
}

// DeleteRegistration cancels a registration if present.
func DeleteRegistration(userID, eventID int64) error {
	_, err := db.DB.Exec(`DELETE FROM event_registrations WHERE user_id = ? AND event_id = ?`, userID, eventID)
	return err
}
