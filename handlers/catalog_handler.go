package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ngo_discovery/models"
	"ngo_discovery/services"
	"ngo_discovery/utils"
)

// ListNGOsHandler godoc
// @Summary Browse approved organizations
// @Tags catalog
// @Produce json
// @Param city query string false "Filter by city"
// @Param category query string false "Filter by category slug"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/ngos [get]
func ListNGOsHandler(w http.ResponseWriter, r *http.Request) {
	ngos, err := services.ListNGOs(r.URL.Query().Get("city"), r.URL.Query().Get("category"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, ngos)
}

// GetNGOHandler godoc
// @Summary Get one organization
// @Description Returns an approved organization. When uid is given, the view is recorded in the user's activity history.
// @Tags catalog
// @Produce json
// @Param id path int true "Organization ID"
// @Param uid query int false "Viewing user ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/ngos/{id} [get]
func GetNGOHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var viewerID int64
	if uid := r.URL.Query().Get("uid"); uid != "" {
		viewerID, _ = strconv.ParseInt(uid, 10, 64)
	}

	ngo, err := services.GetNGODetail(id, viewerID)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, ngo)
}

// ListCategoriesHandler godoc
// @Summary List categories with approved organization counts
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/categories [get]
func ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := services.ListCategories()
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, categories)
}

// MapNGOsHandler godoc
// @Summary Approved organizations with map coordinates
// @Tags catalog
// @Produce json
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/map/ngos [get]
func MapNGOsHandler(w http.ResponseWriter, r *http.Request) {
	ngos, err := services.ListMappedNGOs()
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, ngos)
}

// ListEventsHandler godoc
// @Summary Browse upcoming events
// @Tags catalog
// @Produce json
// @Param city query string false "Filter by the owning organization's city"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/events [get]
func ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := services.ListUpcomingEvents(r.URL.Query().Get("city"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeEventNotFound)
		return
	}
	utils.WriteSuccessResponse(w, events)
}

// ListNewsHandler godoc
// @Summary Published news feed
// @Tags catalog
// @Produce json
// @Param city query string false "Filter by city (city-less news always included)"
// @Param limit query int false "Maximum number of items"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/news [get]
func ListNewsHandler(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimitParam(r.URL.Query().Get("limit"))
	news, err := services.ListNews(r.URL.Query().Get("city"), limit)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, news)
}
