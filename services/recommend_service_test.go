package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngo_discovery/config"
	"ngo_discovery/models"
)

// fakeReaders is an in-memory stand-in for the repository-backed collaborators.
type fakeReaders struct {
	ngos         []models.NGO
	events       []models.Event
	approved     []models.NGO // backfill pool
	favorites    []int64
	viewed       []int64
	registered   []int64
	reviewCounts map[int64]int // categoryID -> review count

	lastCityFilter string
	err            error
}

func (f *fakeReaders) ListVisibleNGOs(city string) ([]models.NGO, error) {
	f.lastCityFilter = city
	if f.err != nil {
		return nil, f.err
	}
	if city == "" {
		return f.ngos, nil
	}
	filtered := make([]models.NGO, 0)
	for _, n := range f.ngos {
		if n.City == city {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}

func (f *fakeReaders) ListUpcomingEvents(city string) ([]models.Event, error) {
	f.lastCityFilter = city
	if f.err != nil {
		return nil, f.err
	}
	if city == "" {
		return f.events, nil
	}
	filtered := make([]models.Event, 0)
	for _, e := range f.events {
		if e.NGOCity == city {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (f *fakeReaders) ListApprovedNGOsExcluding(excluded []int64, limit int) ([]models.NGO, error) {
	if f.err != nil {
		return nil, f.err
	}
	skip := make(map[int64]struct{}, len(excluded))
	for _, id := range excluded {
		skip[id] = struct{}{}
	}

	pool := make([]models.NGO, len(f.approved))
	copy(pool, f.approved)
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })

	result := make([]models.NGO, 0, limit)
	for _, n := range pool {
		if len(result) == limit {
			break
		}
		if _, ok := skip[n.ID]; ok {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (f *fakeReaders) FavoriteNGOIDs(userID int64) ([]int64, error) {
	return f.favorites, f.err
}

func (f *fakeReaders) ViewedNGOIDs(userID int64) ([]int64, error) {
	return f.viewed, f.err
}

func (f *fakeReaders) RegisteredEventIDs(userID int64) ([]int64, error) {
	return f.registered, f.err
}

func (f *fakeReaders) ReviewCountInCategory(userID, categoryID int64) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.reviewCounts[categoryID], nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Recommend.DefaultLimit = 5
	cfg.Recommend.MaxLimit = 50
	return cfg
}

func newTestRecommender(f *fakeReaders) *Recommender {
	return &Recommender{
		cfg:       testConfig(),
		pool:      f,
		exclusion: f,
		affinity:  f,
		now:       func() time.Time { return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) },
	}
}

func testUser(city string, interests string) *models.User {
	return &models.User{ID: 1, Username: "vera", City: city, InterestsRaw: interests}
}

func ngo(id int64, category string, categoryID int64, city string, rating float64, participants, eventsCount int) models.NGO {
	return models.NGO{
		ID:                id,
		Name:              "org",
		CategoryID:        categoryID,
		CategoryName:      category,
		City:              city,
		Rating:            rating,
		ParticipantsCount: participants,
		EventsCount:       eventsCount,
		Status:            models.NGOStatusApproved,
	}
}

func TestRecommendNGOs_InterestPopularityAndRating(t *testing.T) {
	// One Education org in Moscow (rating 4.0, 50 participants, 3 events) and
	// one Health org (rating 5.0, idle). Education must win 26 to 10.
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "Moscow", 4.0, 50, 3),
			ngo(2, "Health", 20, "Moscow", 5.0, 0, 0),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("Moscow", `["Education"]`), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, int64(1), result[0].NGO.ID)
	assert.Equal(t, 26.0, result[0].Score) // 10 interest + 5 popularity + 3 events + 8 rating
	assert.Equal(t, int64(2), result[1].NGO.ID)
	assert.Equal(t, 10.0, result[1].Score) // rating only
	assert.Equal(t, "Moscow", f.lastCityFilter)
}

func TestRecommendNGOs_InterestMatchAddsTenPoints(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 3.0, 20, 2),
			ngo(2, "Health", 20, "", 3.0, 20, 2),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", `["Education"]`), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].NGO.ID)
	assert.Equal(t, 10.0, result[0].Score-result[1].Score)
}

func TestRecommendNGOs_AffinityBoost(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 0, 0, 0),
			ngo(2, "Health", 20, "", 0, 0, 0),
		},
		reviewCounts: map[int64]int{10: 2},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].NGO.ID)
	assert.Equal(t, 3.0, result[0].Score)
	assert.Equal(t, 0.0, result[1].Score)
}

func TestRecommendNGOs_PopularityCaps(t *testing.T) {
	// Participants and events contributions are both capped at 5.
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 0, 1000, 40),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 10.0, result[0].Score)
}

func TestRecommendNGOs_ScoreMonotonicInSignals(t *testing.T) {
	base := ngo(1, "Education", 10, "", 2.0, 20, 2)
	score := func(n models.NGO) float64 {
		f := &fakeReaders{ngos: []models.NGO{n}}
		r := newTestRecommender(f)
		result, err := r.RecommendNGOs(testUser("", ""), 5)
		require.NoError(t, err)
		require.Len(t, result, 1)
		return result[0].Score
	}

	baseScore := score(base)

	higherRating := base
	higherRating.Rating = 3.5
	assert.GreaterOrEqual(t, score(higherRating), baseScore)

	morePopular := base
	morePopular.ParticipantsCount = 30
	assert.GreaterOrEqual(t, score(morePopular), baseScore)

	moreEvents := base
	moreEvents.EventsCount = 4
	assert.GreaterOrEqual(t, score(moreEvents), baseScore)
}

func TestRecommendNGOs_ExcludesEngagedOrganizations(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 4.0, 10, 1),
			ngo(2, "Education", 10, "", 4.0, 10, 1),
			ngo(3, "Education", 10, "", 4.0, 10, 1),
		},
		favorites: []int64{1},
		viewed:    []int64{2},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(3), result[0].NGO.ID)
}

func TestRecommendNGOs_BackfillPadsShortResult(t *testing.T) {
	// Only 2 orgs survive filtering; backfill must pad to 5 from the approved
	// pool without reintroducing excluded ids.
	scoredPool := []models.NGO{
		ngo(1, "Education", 10, "Moscow", 4.0, 10, 1),
		ngo(2, "Education", 10, "Moscow", 3.0, 10, 1),
		ngo(3, "Education", 10, "Moscow", 3.0, 10, 1),
	}
	approved := []models.NGO{
		ngo(1, "Education", 10, "Moscow", 4.0, 10, 1),
		ngo(2, "Education", 10, "Moscow", 3.0, 10, 1),
		ngo(3, "Education", 10, "Moscow", 3.0, 10, 1),
		ngo(4, "Health", 20, "Kazan", 2.0, 0, 0),
		ngo(5, "Health", 20, "Kazan", 2.0, 0, 0),
		ngo(6, "Ecology", 30, "Kazan", 2.0, 0, 0),
		ngo(7, "Ecology", 30, "Kazan", 2.0, 0, 0),
	}
	f := &fakeReaders{
		ngos:     scoredPool,
		approved: approved,
		viewed:   []int64{3},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("Moscow", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 5)

	// First two are scored, last three are backfill.
	assert.False(t, result[0].Backfill)
	assert.False(t, result[1].Backfill)
	for _, item := range result[2:] {
		assert.True(t, item.Backfill)
	}

	seen := make(map[int64]bool)
	for _, item := range result {
		assert.NotEqual(t, int64(3), item.NGO.ID, "excluded id must not come back through backfill")
		assert.False(t, seen[item.NGO.ID], "duplicate id in result")
		seen[item.NGO.ID] = true
	}
}

func TestRecommendNGOs_NoBackfillWhenPoolIsSufficient(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 4.0, 10, 1),
			ngo(2, "Education", 10, "", 3.0, 10, 1),
		},
		approved: []models.NGO{
			ngo(1, "Education", 10, "", 4.0, 10, 1),
			ngo(2, "Education", 10, "", 3.0, 10, 1),
			ngo(9, "Health", 20, "", 1.0, 0, 0),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 2)
	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, item := range result {
		assert.False(t, item.Backfill)
	}
}

func TestRecommendNGOs_ShortWhenEvenBackfillExhausted(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 4.0, 10, 1),
		},
		approved: []models.NGO{
			ngo(1, "Education", 10, "", 4.0, 10, 1),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestRecommendNGOs_TieBreakByID(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(5, "Education", 10, "", 2.0, 0, 0),
			ngo(2, "Education", 10, "", 2.0, 0, 0),
			ngo(9, "Education", 10, "", 2.0, 0, 0),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, int64(2), result[0].NGO.ID)
	assert.Equal(t, int64(5), result[1].NGO.ID)
	assert.Equal(t, int64(9), result[2].NGO.ID)
}

func TestRecommendNGOs_EmptyCitySkipsFilter(t *testing.T) {
	f := &fakeReaders{ngos: []models.NGO{ngo(1, "Education", 10, "Moscow", 1.0, 0, 0)}}
	r := newTestRecommender(f)

	_, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	assert.Equal(t, "", f.lastCityFilter)
}

func TestRecommendNGOs_ReaderErrorPropagates(t *testing.T) {
	f := &fakeReaders{err: errors.New("connection refused")}
	r := newTestRecommender(f)

	_, err := r.RecommendNGOs(testUser("", ""), 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func event(id, ngoID int64, category string, categoryID int64, city string, rating float64, registered int, date time.Time) models.Event {
	return models.Event{
		ID:              id,
		NGOID:           ngoID,
		NGOCity:         city,
		NGOCategoryID:   categoryID,
		NGOCategoryName: category,
		NGORating:       rating,
		EventDate:       date,
		RegisteredCount: registered,
	}
}

func TestRecommendEvents_RecencyBoost(t *testing.T) {
	// Identical events 3 and 20 days out: the closer one scores 2 more.
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &fakeReaders{
		events: []models.Event{
			event(1, 100, "Education", 10, "", 0, 0, now.AddDate(0, 0, 3)),
			event(2, 100, "Education", 10, "", 0, 0, now.AddDate(0, 0, 20)),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendEvents(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].Event.ID)
	assert.Equal(t, 5.0, result[0].Score)
	assert.Equal(t, 3.0, result[1].Score)
}

func TestRecommendEvents_NoRecencyBeyondMonth(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &fakeReaders{
		events: []models.Event{
			event(1, 100, "Education", 10, "", 0, 0, now.AddDate(0, 0, 45)),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendEvents(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 0.0, result[0].Score)
}

func TestRecommendEvents_FullScoring(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &fakeReaders{
		events: []models.Event{
			// 10 interest + min(40/5,5)=5 popularity + 4.5*2=9 rating + 5 recency = 29
			event(1, 100, "Education", 10, "Moscow", 4.5, 40, now.AddDate(0, 0, 2)),
		},
	}
	r := newTestRecommender(f)

	result, err := r.RecommendEvents(testUser("Moscow", `["Education"]`), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 29.0, result[0].Score)
}

func TestRecommendEvents_ExcludesRegisteredAndStaysShort(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	f := &fakeReaders{
		events: []models.Event{
			event(1, 100, "Education", 10, "", 0, 0, now.AddDate(0, 0, 3)),
			event(2, 100, "Education", 10, "", 0, 0, now.AddDate(0, 0, 4)),
		},
		registered: []int64{1},
	}
	r := newTestRecommender(f)

	// Events have no backfill step: excluding leaves a short list.
	result, err := r.RecommendEvents(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].Event.ID)
}

func TestRecommend_UnknownKindReturnsEmpty(t *testing.T) {
	r := newTestRecommender(&fakeReaders{})

	result, err := r.Recommend(testUser("", ""), "foo", 5)
	require.NoError(t, err)
	assert.Empty(t, result.Items())
	assert.Nil(t, result.NGOs)
	assert.Nil(t, result.Events)
}

func TestRecommend_DispatchesOnKind(t *testing.T) {
	f := &fakeReaders{
		ngos:   []models.NGO{ngo(1, "Education", 10, "", 1.0, 0, 0)},
		events: []models.Event{event(1, 100, "Education", 10, "", 0, 0, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))},
	}
	r := newTestRecommender(f)

	result, err := r.Recommend(testUser("", ""), models.RecommendNGOs, 5)
	require.NoError(t, err)
	assert.Len(t, result.NGOs, 1)
	assert.Nil(t, result.Events)
	items, ok := result.Items().([]models.RecommendedNGO)
	require.True(t, ok)
	assert.Len(t, items, 1)

	result, err = r.Recommend(testUser("", ""), models.RecommendEvents, 5)
	require.NoError(t, err)
	assert.Len(t, result.Events, 1)
	assert.Nil(t, result.NGOs)
}

func TestRecommendNGOs_DefaultAndMaxLimit(t *testing.T) {
	pool := make([]models.NGO, 0, 10)
	for i := int64(1); i <= 10; i++ {
		pool = append(pool, ngo(i, "Education", 10, "", 1.0, 0, 0))
	}
	f := &fakeReaders{ngos: pool, approved: pool}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", ""), 0)
	require.NoError(t, err)
	assert.Len(t, result, 5, "zero limit falls back to the default")

	r.cfg.Recommend.MaxLimit = 3
	result, err = r.RecommendNGOs(testUser("", ""), 100)
	require.NoError(t, err)
	assert.Len(t, result, 3, "limit is capped")
}

func TestRecommendNGOs_UnsetMaxLimitDoesNotClamp(t *testing.T) {
	pool := make([]models.NGO, 0, 10)
	for i := int64(1); i <= 10; i++ {
		pool = append(pool, ngo(i, "Education", 10, "", 1.0, 0, 0))
	}
	f := &fakeReaders{ngos: pool, approved: pool}
	r := newTestRecommender(f)
	r.cfg = &config.Config{} // no limits configured at all

	result, err := r.RecommendNGOs(testUser("", ""), 7)
	require.NoError(t, err)
	assert.Len(t, result, 7, "an explicit limit survives an unset cap")
}

func TestRecommendNGOs_MalformedInterestsIgnored(t *testing.T) {
	f := &fakeReaders{ngos: []models.NGO{ngo(1, "Education", 10, "", 2.0, 0, 0)}}
	r := newTestRecommender(f)

	result, err := r.RecommendNGOs(testUser("", "{not json"), 5)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 4.0, result[0].Score) // rating only, no interest points
}

// fakeReranker drives the AI path without a network.
type fakeReranker struct {
	ids []int64
	err error
}

func (f *fakeReranker) RerankNGOIDs(ctx context.Context, user *models.User, candidates []models.NGO, limit int) ([]int64, error) {
	return f.ids, f.err
}

func TestRecommendNGOs_AIRerankReordersCandidates(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 5.0, 50, 5),
			ngo(2, "Health", 20, "", 1.0, 0, 0),
		},
	}
	r := newTestRecommender(f)
	r.reranker = &fakeReranker{ids: []int64{2, 1}}

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].NGO.ID)
	assert.Equal(t, int64(1), result[1].NGO.ID)
}

func TestRecommendNGOs_AIFailureFallsBackToRules(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 5.0, 50, 5),
			ngo(2, "Health", 20, "", 1.0, 0, 0),
		},
	}
	r := newTestRecommender(f)
	r.reranker = &fakeReranker{err: &AIError{Kind: AIErrNetwork, Err: errors.New("timeout")}}

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err, "AI failures must never surface")
	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].NGO.ID, "rule-based order preserved")
}

func TestRecommendNGOs_AICannotIntroduceNewIDs(t *testing.T) {
	f := &fakeReaders{
		ngos: []models.NGO{
			ngo(1, "Education", 10, "", 5.0, 50, 5),
			ngo(2, "Health", 20, "", 1.0, 0, 0),
		},
		favorites: []int64{3},
	}
	r := newTestRecommender(f)
	// The model answers with an excluded id and a fabricated one.
	r.reranker = &fakeReranker{ids: []int64{3, 99, 2}}

	result, err := r.RecommendNGOs(testUser("", ""), 5)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(2), result[0].NGO.ID)
	assert.Equal(t, int64(1), result[1].NGO.ID)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, daysUntil(now, time.Date(2026, 8, 29, 23, 45, 0, 0, time.UTC)))
	// Half an hour later but across midnight counts as a full day.
	assert.Equal(t, 1, daysUntil(now, time.Date(2026, 8, 30, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 7, daysUntil(now, now.AddDate(0, 0, 7)))
}
