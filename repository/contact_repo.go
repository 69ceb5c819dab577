package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// CreateContactMessage stores a visitor message addressed to an organization.
func CreateContactMessage(msg *models.ContactMessage) error {
	result, err := db.DB.Exec(`
		INSERT INTO contact_messages (ngo_id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		msg.NGOID, msg.Name, msg.Email, msg.Message)
	if err != nil {
		return err
	}
	msg.ID, _ = result.LastInsertId()
	return nil
}
