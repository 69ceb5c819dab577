package services

import (
	"context"

	"ngo_discovery/models"
)

// CandidatePoolReader supplies the publicly visible candidates the scorer
// ranks: approved organizations and upcoming events.
type CandidatePoolReader interface {
	ListVisibleNGOs(city string) ([]models.NGO, error)
	ListUpcomingEvents(city string) ([]models.Event, error)

	// ListApprovedNGOsExcluding feeds the backfill step: approved
	// organizations outside the given id set, id ascending.
	ListApprovedNGOsExcluding(excluded []int64, limit int) ([]models.NGO, error)
}

// ExclusionReader supplies the ids a user has already engaged with. These are
// removed from the candidate pool before scoring.
type ExclusionReader interface {
	FavoriteNGOIDs(userID int64) ([]int64, error)
	ViewedNGOIDs(userID int64) ([]int64, error)
	RegisteredEventIDs(userID int64) ([]int64, error)
}

// AffinityReader supplies the prior-review signal: how many reviews the user
// left on organizations in a category.
type AffinityReader interface {
	ReviewCountInCategory(userID, categoryID int64) (int, error)
}

// NGOReranker is the optional external-AI ordering hook. A non-nil error means
// the caller must fall back to the rule-based order; reranking is never
// allowed to fail a recommendation request.
type NGOReranker interface {
	RerankNGOIDs(ctx context.Context, user *models.User, candidates []models.NGO, limit int) ([]int64, error)
}
