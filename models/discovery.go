package models

// SearchResult groups full-text matches across the public catalog.
type SearchResult struct {
	Query     string     `json:"query"`
	NGOs      []NGO      `json:"ngos"`
	Events    []Event    `json:"events"`
	Materials []Material `json:"materials"`
	News      []News     `json:"news"`
}

// Statistics are the platform-wide counters shown on the landing page.
type Statistics struct {
	NGOs           int64 `json:"ngos"`
	UpcomingEvents int64 `json:"upcoming_events"`
	Users          int64 `json:"users"`
	Reviews        int64 `json:"reviews"`
	Cities         int64 `json:"cities"`
}
