package services

import (
	"strings"

	"ngo_discovery/logger"
	"ngo_discovery/models"
	"ngo_discovery/repository"
)

// GetUser loads the user profile the recommendation endpoints score against.
func GetUser(id int64) (*models.User, error) {
	return repository.GetUser(id)
}

// ListNGOs returns approved organizations for catalog browsing.
func ListNGOs(city, categorySlug string) ([]models.NGO, error) {
	return repository.ListNGOs(city, categorySlug)
}

// GetNGODetail returns one approved organization. When viewerID is set the
// view lands in the activity history, which feeds the recommendation
// exclusion set; a failed write only loses that signal, never the response.
func GetNGODetail(ngoID, viewerID int64) (*models.NGO, error) {
	ngo, err := repository.GetNGO(ngoID)
	if err != nil {
		return nil, err
	}

	if viewerID > 0 {
		if err := repository.LogNGOActivity(viewerID, ngoID, models.ActivityView); err != nil {
			logger.Warn("Failed to record view activity", "user_id", viewerID, "ngo_id", ngoID, "error", err)
		}
	}
	return ngo, nil
}

// ListUpcomingEvents returns future events, optionally restricted to a city.
func ListUpcomingEvents(city string) ([]models.Event, error) {
	return repository.ListUpcomingEvents(city)
}

// ListNews returns the published news feed, newest first.
func ListNews(city string, limit int) ([]models.News, error) {
	return repository.ListPublishedNews(city, limit)
}

// ListCategories returns all categories with approved organization counts.
func ListCategories() ([]models.Category, error) {
	return repository.ListCategories()
}

// ListMappedNGOs returns approved organizations that can be pinned on the map.
func ListMappedNGOs() ([]models.NGO, error) {
	return repository.ListMappedNGOs()
}

// ListTags returns the knowledge-base tags.
func ListTags() ([]models.Tag, error) {
	return repository.ListTags()
}

// ListMaterials returns knowledge-base materials with optional tag and text
// filters.
func ListMaterials(tagSlug, q string) ([]models.Material, error) {
	return repository.ListMaterials(tagSlug, q)
}

// GetMaterialDetail returns one material and bumps its view counter. A failed
// bump only loses the count, never the response.
func GetMaterialDetail(id int64) (*models.Material, error) {
	material, err := repository.GetMaterial(id)
	if err != nil {
		return nil, err
	}

	if err := repository.IncrementMaterialViews(id); err != nil {
		logger.Warn("Failed to bump material views", "material_id", id, "error", err)
	}
	return material, nil
}

// Search matches the query against organizations, upcoming events, materials
// and published news. A blank query matches nothing.
func Search(q string) (*models.SearchResult, error) {
	result := &models.SearchResult{
		Query:     strings.TrimSpace(q),
		NGOs:      []models.NGO{},
		Events:    []models.Event{},
		Materials: []models.Material{},
		News:      []models.News{},
	}
	if result.Query == "" {
		return result, nil
	}

	var err error
	if result.NGOs, err = repository.SearchNGOs(result.Query); err != nil {
		return nil, err
	}
	if result.Events, err = repository.SearchEvents(result.Query); err != nil {
		return nil, err
	}
	if result.Materials, err = repository.ListMaterials("", result.Query); err != nil {
		return nil, err
	}
	if result.News, err = repository.SearchPublishedNews(result.Query); err != nil {
		return nil, err
	}
	return result, nil
}

// GetStatistics returns the platform-wide counters.
func GetStatistics() (*models.Statistics, error) {
	return repository.GetStatistics()
}
