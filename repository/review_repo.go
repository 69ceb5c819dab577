package repository

import (
	"ngo_discovery/db"
	"ngo_discovery/models"
)

// ReviewCountInCategory counts the user's reviews on organizations in the
// given category. Feeds the affinity signal of the recommendation scorer.
func ReviewCountInCategory(userID, categoryID int64) (int, error) {
	var count int
	err := db.DB.QueryRow(`
		SELECT COUNT(*)
		FROM reviews r
		JOIN ngos n ON n.id = r.ngo_id
		WHERE r.user_id = ? AND n.category_id = ?`, userID, categoryID).Scan(&count)
	return count, err
}

// HasReview reports whether the user already reviewed the organization.
func HasReview(userID, ngoID int64) (bool, error) {
	return exists(`SELECT COUNT(*) FROM reviews WHERE user_id = ? AND ngo_id = ?`, userID, ngoID)
}

// CreateReview inserts a review. One review per user per organization is
// enforced by a unique key; callers should check HasReview first for a clean
// error code.
func CreateReview(review *models.Review) error {
	result, err := db.DB.Exec(`
		INSERT INTO reviews (ngo_id, user_id, rating, comment, created_at)
		VALUES (?, ?, ?, ?, NOW())`,
		review.NGOID, review.UserID, review.Rating, review.Comment)
	if err != nil {
		return err
	}
	review.ID, _ = result.LastInsertId()
	return nil
}

// ListNGOReviews returns all reviews for an organization, newest first.
func ListNGOReviews(ngoID int64) ([]models.Review, error) {
	rows, err := db.DB.Query(`
		SELECT r.id, r.ngo_id, r.user_id, u.username, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.ngo_id = ?
		ORDER BY r.created_at DESC`, ngoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.NGOID, &r.UserID, &r.Username, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
