package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ngo_discovery/models"
	"ngo_discovery/services"
	"ngo_discovery/utils"
)

// ListTagsHandler godoc
// @Summary List knowledge-base tags
// @Tags materials
// @Produce json
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/tags [get]
func ListTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := services.ListTags()
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, tags)
}

// ListMaterialsHandler godoc
// @Summary Browse knowledge-base materials
// @Tags materials
// @Produce json
// @Param tag query string false "Filter by tag slug"
// @Param q query string false "Text filter on title, description and author"
// @Success 200 {object} models.APIResponse "success"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/materials [get]
func ListMaterialsHandler(w http.ResponseWriter, r *http.Request) {
	materials, err := services.ListMaterials(r.URL.Query().Get("tag"), r.URL.Query().Get("q"))
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeServerError)
		return
	}
	utils.WriteSuccessResponse(w, materials)
}

// GetMaterialHandler godoc
// @Summary Get one material
// @Description Returns a knowledge-base material and counts the view.
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/materials/{id} [get]
func GetMaterialHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseIDParam(w, "id", chi.URLParam(r, "id"))
	if !ok {
		return
	}

	material, err := services.GetMaterialDetail(id)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeMaterialNotFound)
		return
	}
	utils.WriteSuccessResponse(w, material)
}

type libraryRequest struct {
	Notes string `json:"notes"`
}

// SaveToLibraryHandler godoc
// @Summary Save a material to the user's library
// @Tags library
// @Accept json
// @Produce json
// @Param uid path int true "User ID"
// @Param materialID path int true "Material ID"
// @Param body body libraryRequest false "Personal notes"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/library/{materialID} [post]
func SaveToLibraryHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}
	materialID, ok := utils.ParseIDParam(w, "materialID", chi.URLParam(r, "materialID"))
	if !ok {
		return
	}

	var req libraryRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) // notes are optional
	}

	if err := services.SaveToLibrary(uid, materialID, req.Notes); err != nil {
		utils.HandleServiceError(w, err, models.CodeMaterialNotFound)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"uid":         uid,
		"material_id": materialID,
	})
}

// RemoveFromLibraryHandler godoc
// @Summary Remove a material from the user's library
// @Tags library
// @Produce json
// @Param uid path int true "User ID"
// @Param materialID path int true "Material ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/library/{materialID} [delete]
func RemoveFromLibraryHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}
	materialID, ok := utils.ParseIDParam(w, "materialID", chi.URLParam(r, "materialID"))
	if !ok {
		return
	}

	if err := services.RemoveFromLibrary(uid, materialID); err != nil {
		utils.HandleServiceError(w, err, models.CodeMaterialNotFound)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}

// ListLibraryHandler godoc
// @Summary List the user's saved materials
// @Tags library
// @Produce json
// @Param uid path int true "User ID"
// @Success 200 {object} models.APIResponse "success"
// @Failure 400 {object} models.APIResponse "invalid parameters"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/users/{uid}/library [get]
func ListLibraryHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.ParseIDParam(w, "uid", chi.URLParam(r, "uid"))
	if !ok {
		return
	}

	items, err := services.ListLibrary(uid)
	if err != nil {
		utils.HandleServiceError(w, err, models.CodeUserNotFound)
		return
	}
	utils.WriteSuccessResponse(w, items)
}
