package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ngo_discovery/models"
	"ngo_discovery/services"
	"ngo_discovery/utils"
)

// GetRecommendationsHandler godoc
// @Summary Get personalized recommendations for a user
// @Description Ranks approved organizations or upcoming events for the user from declared interests, popularity, rating, review history and event recency. An unknown type yields an empty list.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param uid path int true "User ID"
// @Param type query string false "Recommendation kind: ngos (default) or events"
// @Param limit query int false "Maximum number of results (default 5)"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/recommendations/{uid} [get]
func GetRecommendationsHandler(w http.ResponseWriter, r *http.Request, recommender *services.Recommender) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	kind := r.URL.Query().Get("type")
	if kind == "" {
		kind = models.RecommendNGOs
	}
	limit := utils.ParseLimitParam(r.URL.Query().Get("limit"))

	user, err := services.GetUser(uid)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeUserNotFound)
		return
	}

	result, err := recommender.Recommend(user, kind, limit)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNoRecommendData)
		return
	}

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"uid":   uid,
		"type":  kind,
		"items": result.Items(),
	})
}
