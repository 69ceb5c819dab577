package services

import (
	"context"
	"math"
	"sort"
	"time"

	"ngo_discovery/config"
	"ngo_discovery/logger"
	"ngo_discovery/models"
)

// Scoring weights. The exact additive scheme is part of the product behavior,
// do not reorder or rescale without revisiting the ranking tests.
const (
	interestMatchScore     = 10.0
	popularityCap          = 5.0
	ngoPopularityDivisor   = 10.0
	eventPopularityDivisor = 5.0
	eventsCountCap         = 5.0
	ratingMultiplier       = 2.0
	affinityScore          = 3.0
	recencyWeekScore       = 5.0
	recencyMonthScore      = 3.0
	recencyWeekDays        = 7
	recencyMonthDays       = 30
)

// Recommender ranks organizations and events for a user from declared
// interests, popularity, rating, review history and recency. It holds no
// state across calls; every recommendation reads fresh data through its
// collaborators.
type Recommender struct {
	cfg       *config.Config
	pool      CandidatePoolReader
	exclusion ExclusionReader
	affinity  AffinityReader
	reranker  NGOReranker // optional, nil disables the AI path entirely
	now       func() time.Time
}

// NewRecommender wires a Recommender over the repository layer and, when
// configured, the external AI reranker.
func NewRecommender(cfg *config.Config) *Recommender {
	readers := dbReaders{}
	return &Recommender{
		cfg:       cfg,
		pool:      readers,
		exclusion: readers,
		affinity:  readers,
		reranker:  NewAIClient(cfg),
		now:       time.Now,
	}
}

// Recommend dispatches on kind ("ngos" or "events"). An unrecognized kind
// yields an empty result rather than an error; callers always get a
// well-formed list through the result's Items method.
func (r *Recommender) Recommend(user *models.User, kind string, limit int) (*models.RecommendationResult, error) {
	result := &models.RecommendationResult{Kind: kind}
	var err error

	switch kind {
	case models.RecommendNGOs:
		result.NGOs, err = r.RecommendNGOs(user, limit)
	case models.RecommendEvents:
		result.Events, err = r.RecommendEvents(user, limit)
	default:
		logger.Warn("Unknown recommendation kind requested", "kind", kind, "user_id", user.ID)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecommendNGOs ranks approved organizations for the user. The result is
// backfilled from the broader approved pool when scoring leaves it short of
// limit, and can still come back short only when that pool is exhausted.
func (r *Recommender) RecommendNGOs(user *models.User, limit int) ([]models.RecommendedNGO, error) {
	limit = r.normalizeLimit(limit)

	ngos, err := r.pool.ListVisibleNGOs(user.City)
	if err != nil {
		return nil, err
	}

	favorited, err := r.exclusion.FavoriteNGOIDs(user.ID)
	if err != nil {
		return nil, err
	}
	viewed, err := r.exclusion.ViewedNGOIDs(user.ID)
	if err != nil {
		return nil, err
	}
	excluded := idSet(favorited, viewed)

	// Affinity is a per-category signal, resolve it once per category.
	affinityByCategory := make(map[int64]bool)

	scored := make([]models.RecommendedNGO, 0, len(ngos))
	for _, ngo := range ngos {
		if _, skip := excluded[ngo.ID]; skip {
			continue
		}

		score := 0.0
		if user.HasInterest(ngo.CategoryName) {
			score += interestMatchScore
		}
		score += math.Min(float64(ngo.ParticipantsCount)/ngoPopularityDivisor, popularityCap)
		score += math.Min(float64(ngo.EventsCount), eventsCountCap)
		score += ngo.Rating * ratingMultiplier

		hasAffinity, cached := affinityByCategory[ngo.CategoryID]
		if !cached {
			count, err := r.affinity.ReviewCountInCategory(user.ID, ngo.CategoryID)
			if err != nil {
				return nil, err
			}
			hasAffinity = count > 0
			affinityByCategory[ngo.CategoryID] = hasAffinity
		}
		if hasAffinity {
			score += affinityScore
		}

		scored = append(scored, models.RecommendedNGO{NGO: ngo, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].NGO.ID < scored[j].NGO.ID // deterministic tie-break
	})

	result := r.rerankNGOs(user, scored, limit)
	if len(result) > limit {
		result = result[:limit]
	}

	if len(result) < limit {
		result, err = r.backfillNGOs(result, excluded, limit)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// backfillNGOs pads a short result from the approved pool, id ascending,
// honoring both the already-selected ids and the user's exclusion set.
func (r *Recommender) backfillNGOs(selected []models.RecommendedNGO, excluded map[int64]struct{}, limit int) ([]models.RecommendedNGO, error) {
	skip := make([]int64, 0, len(selected)+len(excluded))
	for _, item := range selected {
		skip = append(skip, item.NGO.ID)
	}
	for id := range excluded {
		skip = append(skip, id)
	}

	extra, err := r.pool.ListApprovedNGOsExcluding(skip, limit-len(selected))
	if err != nil {
		return nil, err
	}

	for _, ngo := range extra {
		selected = append(selected, models.RecommendedNGO{NGO: ngo, Backfill: true})
	}
	return selected, nil
}

// RecommendEvents ranks upcoming events for the user. Events have no backfill
// step; a short pool returns a short list.
func (r *Recommender) RecommendEvents(user *models.User, limit int) ([]models.RecommendedEvent, error) {
	limit = r.normalizeLimit(limit)

	events, err := r.pool.ListUpcomingEvents(user.City)
	if err != nil {
		return nil, err
	}

	registered, err := r.exclusion.RegisteredEventIDs(user.ID)
	if err != nil {
		return nil, err
	}
	excluded := idSet(registered)

	now := r.now()
	scored := make([]models.RecommendedEvent, 0, len(events))
	for _, event := range events {
		if _, skip := excluded[event.ID]; skip {
			continue
		}

		score := 0.0
		if user.HasInterest(event.NGOCategoryName) {
			score += interestMatchScore
		}
		score += math.Min(float64(event.RegisteredCount)/eventPopularityDivisor, popularityCap)
		score += event.NGORating * ratingMultiplier

		days := daysUntil(now, event.EventDate)
		if days <= recencyWeekDays {
			score += recencyWeekScore
		} else if days <= recencyMonthDays {
			score += recencyMonthScore
		}

		scored = append(scored, models.RecommendedEvent{Event: event, Score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Event.ID < scored[j].Event.ID // deterministic tie-break
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// rerankNGOs lets the external AI reorder the scored candidates. Any failure
// falls back to the rule-based order; the caller never sees the difference.
// The reranker can only reorder what scoring admitted, never add candidates.
func (r *Recommender) rerankNGOs(user *models.User, scored []models.RecommendedNGO, limit int) []models.RecommendedNGO {
	if r.reranker == nil || len(scored) == 0 {
		return scored
	}

	candidates := make([]models.NGO, len(scored))
	byID := make(map[int64]models.RecommendedNGO, len(scored))
	for i, item := range scored {
		candidates[i] = item.NGO
		byID[item.NGO.ID] = item
	}

	ids, err := r.reranker.RerankNGOIDs(context.Background(), user, candidates, limit)
	if err != nil {
		logger.Debug("AI rerank unavailable, keeping rule-based order", "user_id", user.ID, "reason", err)
		return scored
	}

	reordered := make([]models.RecommendedNGO, 0, len(scored))
	taken := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			continue // the model may only reorder, never invent candidates
		}
		if _, dup := taken[id]; dup {
			continue
		}
		reordered = append(reordered, item)
		taken[id] = struct{}{}
	}

	// Preserve anything the model dropped, in rule order.
	for _, item := range scored {
		if _, ok := taken[item.NGO.ID]; !ok {
			reordered = append(reordered, item)
		}
	}
	return reordered
}

func (r *Recommender) normalizeLimit(limit int) int {
	if limit <= 0 {
		limit = r.cfg.Recommend.DefaultLimit
	}
	// An unset cap means no cap, not an always-empty result.
	if max := r.cfg.Recommend.MaxLimit; max > 0 && limit > max {
		limit = max
	}
	return limit
}

// idSet unions id slices into a lookup set.
func idSet(groups ...[]int64) map[int64]struct{} {
	set := make(map[int64]struct{})
	for _, ids := range groups {
		for _, id := range ids {
			set[id] = struct{}{}
		}
	}
	return set
}

// daysUntil counts whole calendar days between now and t, matching date
// subtraction rather than elapsed hours: an event later today is 0 days away.
func daysUntil(now, t time.Time) int {
	t = t.In(now.Location())
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	eventDate := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
	return int(eventDate.Sub(nowDate).Hours() / 24)
}
