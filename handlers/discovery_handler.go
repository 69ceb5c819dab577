package handlers

import (
	"net/http"

	"ngo_discovery/models"
	"ngo_discovery/services"
	"ngo_discovery/utils"
)

// SearchHandler godoc
// @Summary Search the public catalog
// @Description Matches the query against organizations, upcoming events, materials and news. A blank query yields empty result sets.
// @Tags discovery
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/search [get]
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	result, err := services.Search(r.URL.Query().Get("q"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, result)
}

// StatisticsHandler godoc
// @Summary Platform-wide counters
// @Tags discovery
// @Produce json
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/statistics [get]
func StatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := services.GetStatistics()
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, stats)
}
