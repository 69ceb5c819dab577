package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// AddFavorite marks an organization as a favorite. Re-favoriting the same
// organization is a no-op.
func AddFavorite(userID, ngoID int64) error {
	_, err := db.DB.Exec(`
		INSERT INTO favorites (user_id, ngo_id, created_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE created_at = created_at`, userID, ngoID)
	return err
}

// RemoveFavorite deletes a favorite if present.
func RemoveFavorite(userID, ngoID int64) error {
	_, err := db.DB.Exec(`DELETE FROM favorites WHERE user_id = ? AND ngo_id = ?`, userID, ngoID)
	return err
}

// ListFavorites returns the user's favorites with their organizations, most
// recently added first.
func ListFavorites(userID int64) ([]models.Favorite, error) {
	rows, err := db.DB.Query(`
		SELECT f.id, f.user_id, f.created_at,`+ngoColumns+`
		FROM favorites f
		JOIN ngos n ON n.id = f.ngo_id
		JOIN categories c ON c.id = n.category_id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC, f.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		n := &f.NGO
		if err := rows.Scan(
			&f.ID, &f.UserID, &f.CreatedAt,
			&n.ID, &n.Name, &n.Slug, &n.CategoryID, &n.CategoryName, &n.ShortDescription,
			&n.City, &n.Rating, &n.ParticipantsCount, &n.EventsCount, &n.Status,
			&n.Latitude, &n.Longitude, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		favorites = append(favorites, f)
	}
	return favorites, rows.Err()
}
