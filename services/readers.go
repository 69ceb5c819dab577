package services

import (
	"ngo_discovery/models"
	"ngo_discovery/repository"
)

// dbReaders backs the scorer's collaborator interfaces with the repository
// layer. Tests substitute in-memory fakes.
type dbReaders struct{}

func (dbReaders) ListVisibleNGOs(city string) ([]models.NGO, error) {
	return repository.ListVisibleNGOs(city)
}

func (dbReaders) ListUpcomingEvents(city string) ([]models.Event, error) {
	return repository.ListUpcomingEvents(city)
}

func (dbReaders) ListApprovedNGOsExcluding(excluded []int64, limit int) ([]models.NGO, error) {
	return repository.ListApprovedNGOsExcluding(excluded, limit)
}

func (dbReaders) FavoriteNGOIDs(userID int64) ([]int64, error) {
	return repository.FavoriteNGOIDs(userID)
}

func (dbReaders) ViewedNGOIDs(userID int64) ([]int64, error) {
	return repository.ViewedNGOIDs(userID)
}

func (dbReaders) RegisteredEventIDs(userID int64) ([]int64, error) {
	return repository.RegisteredEventIDs(userID)
}

func (dbReaders) ReviewCountInCategory(userID, categoryID int64) (int, error) {
	return repository.ReviewCountInCategory(userID, categoryID)
}
