package models

// Recommendation kinds accepted by the scorer
const (
	RecommendNGOs   = "ngos"
	RecommendEvents = "events"
)

// RecommendedNGO is a scored catalog entry returned to the caller.
type RecommendedNGO struct {
	NGO      NGO     `json:"ngo"`
	Score    float64 `json:"score"`
	Backfill bool    `json:"backfill,omitempty"` // true when padded in without scoring
}

// RecommendedEvent is a scored upcoming event returned to the caller.
type RecommendedEvent struct {
	Event Event   `json:"event"`
	Score float64 `json:"score"`
}

// RecommendationResult is the typed outcome of a recommendation request.
// The slice matching Kind is populated; the other stays nil.
type RecommendationResult struct {
	Kind   string             `json:"kind"`
	NGOs   []RecommendedNGO   `json:"-"`
	Events []RecommendedEvent `json:"-"`
}

// Items returns the populated slice for serialization. An unrecognized Kind
// yields an empty list, never nil.
func (r *RecommendationResult) Items() interface{} {
	switch r.Kind {
	case RecommendNGOs:
		if r.NGOs != nil {
			return r.NGOs
		}
	case RecommendEvents:
		if r.Events != nil {
			return r.Events
		}
	}
	return []interface{}{}
}
