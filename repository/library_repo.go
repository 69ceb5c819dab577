package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// SaveToLibrary adds a material to the user's library. Saving the same
// material again only updates the notes.
func SaveToLibrary(userID, materialID int64, notes string) error {
	_, err := db.DB.Exec(`
		INSERT INTO user_library (user_id, material_id, notes, created_at)
		VALUES (?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE notes = VALUES(notes)`, userID, materialID, notes)
	return err
}

// RemoveFromLibrary drops a saved material if present.
func RemoveFromLibrary(userID, materialID int64) error {
	_, err := db.DB.Exec(`
		DELETE FROM user_library WHERE user_id = ? AND material_id = ?`, userID, materialID)
	return err
}

// ListLibrary returns the user's saved materials, most recently added first.
func ListLibrary(userID int64) ([]models.LibraryItem, error) {
	rows, err := db.DB.Query(`
		SELECT l.id, l.user_id, COALESCE(l.notes, ''), l.created_at,`+materialColumns+`
		FROM user_library l
		JOIN materials m ON m.id = l.material_id
		WHERE l.user_id = ?
		ORDER BY l.created_at DESC, l.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.LibraryItem, 0)
	for rows.Next() {
		var item models.LibraryItem
		m := &item.Material
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Notes, &item.CreatedAt,
			&m.ID, &m.Title, &m.Description, &m.Course,
			&m.Author, &m.URL, &m.ViewsCount, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Hydrate tags through the shared helper, then copy them back.
	materials := make([]models.Material, len(items))
	for i := range items {
		materials[i] = items[i].Material
	}
	materials, err = attachTags(materials)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Material = materials[i]
	}
	return items, nil
}

// IsInLibrary reports whether the user has saved the material.
func IsInLibrary(userID, materialID int64) (bool, error) {
	return exists(`
		SELECT COUNT(*) FROM user_library WHERE user_id = ? AND material_id = ?`,
		userID, materialID)
}
