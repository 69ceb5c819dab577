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

// ListModerationRequestsHandler godoc
// @Summary List moderation requests
// @Tags moderation
// @Produce json
// @Param status query string false "Filter by status: pending, approved or rejected"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/moderation [get]
func ListModerationRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := services.ListModerationRequests(r.URL.Query().Get("status"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, requests)
}

type moderationRequest struct {
	ModeratorID int64  `json:"moderator_id"`
	Comment     string `json:"comment"`
	Reason      string `json:"reason"`
}

// ApproveModerationHandler godoc
// @Summary Approve a pending moderation request
// @Description Publishes the organization. Resolving an already-resolved request fails.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Moderation request ID"
// @Param body body moderationRequest false "Moderator id and comment"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters or already resolved"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/moderation/{id}/approve [post]
func ApproveModerationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req moderationRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // moderator details are optional
	}

	request, err := services.ApproveModeration(id, req.ModeratorID, req.Comment)
	if err != nil {
		writeModerationError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, request)
}

// RejectModerationHandler godoc
// @Summary Reject a pending moderation request
// @Description Takes the organization out of the public catalog.
// @Tags moderation
// @Accept json
// @Produce json
// @Param id path int true "Moderation request ID"
// @Param body body moderationRequest false "Moderator id and rejection reason"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters or already resolved"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/moderation/{id}/reject [post]
func RejectModerationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req moderationRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	request, err := services.RejectModeration(id, req.ModeratorID, req.Reason)
	if err != nil {
		writeModerationError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, request)
}

func writeModerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrAlreadyModerated) {
		utils.WriteErrorResponse(w, models.CodeAlreadyModerated, map[string]interface{}{})
		return
	}
	utils.HandleServiceError(w, err, models.CodeInvalidParams)
}
