package services

import (
	"errors"

	"ngo_discovery/logger"
	"ngo_discovery/models"
	"ngo_discovery/repository"
)

var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrAlreadyReviewed   = errors.New("review already submitted for this organization")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)

// AddFavorite records a favorite and the matching activity entry. Favoriting
// twice is a no-op.
func AddFavorite(userID, ngoID int64) error {
	if _, err := repository.GetNGO(ngoID); err != nil {
		return err
	}

	if err := repository.AddFavorite(userID, ngoID); err != nil {
		return err
	}

	if err := repository.LogNGOActivity(userID, ngoID, models.ActivityFavorite); err != nil {
		logger.Warn("Failed to record favorite activity", "user_id", userID, "ngo_id", ngoID, "error", err)
	}
	return nil
}

// RemoveFavorite drops a favorite if present.
func RemoveFavorite(userID, ngoID int64) error {
	return repository.RemoveFavorite(userID, ngoID)
}

// ListFavorites returns the user's favorites with their organizations.
func ListFavorites(userID int64) ([]models.Favorite, error) {
	return repository.ListFavorites(userID)
}

// SaveToLibrary stores a material in the user's library. Saving again only
// updates the notes.
func SaveToLibrary(userID, materialID int64, notes string) error {
	if _, err := repository.GetMaterial(materialID); err != nil {
		return err
	}
	return repository.SaveToLibrary(userID, materialID, notes)
}

// RemoveFromLibrary drops a saved material if present.
func RemoveFromLibrary(userID, materialID int64) error {
	return repository.RemoveFromLibrary(userID, materialID)
}

// ListLibrary returns the user's saved materials, newest first.
func ListLibrary(userID int64) ([]models.LibraryItem, error) {
	return repository.ListLibrary(userID)
}

// ListUserActivity returns the user's activity log, newest first.
func ListUserActivity(userID int64, limit int) ([]models.ActivityEntry, error) {
	return repository.ListUserActivity(userID, limit)
}

// ContactNGO relays a visitor message to an organization.
func ContactNGO(ngoID int64, name, email, message string) (*models.ContactMessage, error) {
	if _, err := repository.GetNGO(ngoID); err != nil {
		return nil, err
	}

	msg := &models.ContactMessage{
		NGOID:   ngoID,
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := repository.CreateContactMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// RegisterForEvent registers the user for an event. One registration per user
// per event.
func RegisterForEvent(userID, eventID int64, name, email string) (*models.EventRegistration, error) {
	if _, err := repository.GetEvent(eventID); err != nil {
		return nil, err
	}

	registered, err := repository.IsRegistered(userID, eventID)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, ErrAlreadyRegistered
	}

	reg := &models.EventRegistration{
		EventID: eventID,
		UserID:  userID,
		Name:    name,
		Email:   email,
	}
	if err := repository.CreateRegistration(reg); err != nil {
		return nil, err
	}

	if err := repository.LogEventActivity(userID, eventID, models.ActivityEventRegistration); err != nil {
		logger.Warn("Failed to record registration activity", "user_id", userID, "event_id", eventID, "error", err)
	}
	return reg, nil
}

// CancelRegistration drops the user's registration if present.
func CancelRegistration(userID, eventID int64) error {
	return repository.DeleteRegistration(userID, eventID)
}

// CreateReview submits a review for an organization. One review per user per
// organization, rating 1 to 5.
func CreateReview(userID, ngoID int64, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := repository.GetNGO(ngoID); err != nil {
		return nil, err
	}

	reviewed, err := repository.HasReview(userID, ngoID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		NGOID:   ngoID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := repository.CreateReview(review); err != nil {
		return nil, err
	}

	if err := repository.LogNGOActivity(userID, ngoID, models.ActivityReview); err != nil {
		logger.Warn("Failed to record review activity", "user_id", userID, "ngo_id", ngoID, "error", err)
	}
	return review, nil
}

// ListReviews returns all reviews for an organization, newest first.
func ListReviews(ngoID int64) ([]models.Review, error) {
	return repository.ListNGOReviews(ngoID)
}
