package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ngo_discovery/models"
	"ngo_discovery/services"
	"ngo_discovery/utils"
)

// AddFavoriteHandler godoc
// @Summary Favorite an organization
// @Tags favorites
// @Produce json
// @Param uid path int true "User ID"
// @Param ngoID path int true "Organization ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/favorites/{ngoID} [post]
func AddFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}
	ngoID, ok := utils.ParseIDParam(w, "ngoID", chi.URLParam(r, "ngoID"))
	if !ok {
		return
	}

	if err := services.AddFavorite(uid, ngoID); err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"uid":    uid,
		"ngo_id": ngoID,
	})
}

// RemoveFavoriteHandler godoc
// @Summary Unfavorite an organization
// @Tags favorites
// @Produce json
// @Param uid path int true "User ID"
// @Param ngoID path int true "Organization ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/favorites/{ngoID} [delete]
func RemoveFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}
	ngoID, ok := utils.ParseIDParam(w, "ngoID", chi.URLParam(r, "ngoID"))
	if !ok {
		return
	}

	if err := services.RemoveFavorite(uid, ngoID); err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}

// ListFavoritesHandler godoc
// @Summary List a user's favorited organizations
// @Tags favorites
// @Produce json
// @Param uid path int true "User ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/favorites [get]
func ListFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	favorites, err := services.ListFavorites(uid)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeUserNotFound)
		return
	}
	utils.WriteSuccessResponse(w, favorites)
}

// ListUserActivityHandler godoc
// @Summary List a user's activity history
// @Tags users
// @Produce json
// @Param uid path int true "User ID"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/activity [get]
func ListUserActivityHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	limit := utils.ParseLimitParam(r.URL.Query().Get("limit"))
	entries, err := services.ListUserActivity(uid, limit)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeUserNotFound)
		return
	}
	utils.WriteSuccessResponse(w, entries)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactNGOHandler godoc
// @Summary Send a message to an organization
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param body body contactRequest true "Sender details and message"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/ngos/{id}/contact [post]
func ContactNGOHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"error": "malformed request body",
		})
		return
	}
	if req.Message == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"error": "message is required",
		})
		return
	}

	msg, err := services.ContactNGO(ngoID, req.Name, req.Email, req.Message)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, msg)
}

type registrationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterForEventHandler godoc
// @Summary Register a user for an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param uid path int true "User ID"
// @Param body body registrationRequest true "Contact details"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters or duplicate registration"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/events/{id}/register/{uid} [post]
func RegisterForEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	var req registrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"error": "malformed request body",
		})
		return
	}

	reg, err := services.RegisterForEvent(uid, eventID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			utils.WriteErrorResponse(w, models.CodeAlreadyRegistered, map[string]interface{}{})
			return
		}
		utils.HandleServiceError(w, err, models.CodeEventNotFound)
		return
	}
	utils.WriteSuccessResponse(w, reg)
}

// CancelRegistrationHandler godoc
// @Summary Cancel an event registration
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Param uid path int true "User ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/events/{id}/register/{uid} [delete]
func CancelRegistrationHandler(w http.ResponseWriter, r *http.Request) {
	eventID, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	if err := services.CancelRegistration(uid, eventID); err != nil {
		utils.HandleServiceError(w, err, models.CodeEventNotFound)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReviewHandler godoc
// @Summary Review an organization
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Organization ID"
// @Param uid path int true "User ID"
// @Param body body reviewRequest true "Rating 1-5 and comment"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters or duplicate review"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/ngos/{id}/reviews/{uid} [post]
func CreateReviewHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
			"error": "malformed request body",
		})
		return
	}

	review, err := services.CreateReview(uid, ngoID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyReviewed):
			utils.WriteErrorResponse(w, models.CodeAlreadyReviewed, map[string]interface{}{})
		case errors.Is(err, services.ErrInvalidRating):
			utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		default:
			utils.HandleServiceError(w, err, models.CodeNGONotFound)
		}
		return
	}
	utils.WriteSuccessResponse(w, review)
}

// ListReviewsHandler godoc
// @Summary List reviews for an organization
// @Tags reviews
// @Produce json
// @Param id path int true "Organization ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/ngos/{id}/reviews [get]
func ListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	reviews, err := services.ListReviews(ngoID)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeNGONotFound)
		return
	}
	utils.WriteSuccessResponse(w, reviews)
}
