// internal/handler/permission.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PermissionHandler struct {
	permissionService *service.PermissionService
}

func NewPermissionHandler(permissionService *service.PermissionService) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

type assignPermissionsRequest struct {
	UserID        string  `json:"user_id" validate:"required,uuid"`
	ModuleID      int     `json:"module_id" validate:"required,gt=0"`
	PermissionIDs []int64 `json:"permission_ids" validate:"required,min=1"`
}

type updatePermissionsRequest struct {
	PermissionIDs []int64 `json:"permission_ids" validate:"required,min=1"`
}

type PermissionResponse struct {
	BaseResponse
	Grant *model.ModulePermission `json:"grant"`
}

type PermissionListResponse struct {
	BaseResponse
	Grants []*model.ModulePermission `json:"grants"`
}

// ListForUser handles GET /permissions/user/{userId}.
func (h *PermissionHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	grants, err := h.permissionService.ListForUser(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PermissionListResponse{BaseResponse: BaseResponse{Ok: true}, Grants: grants})
}

// Assign handles POST /permissions/assign, creating or replacing a grant.
func (h *PermissionHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}
	userID, ok := pathID(w, req.UserID)
	if !ok {
		return
	}

	grant, err := h.permissionService.Assign(r.Context(), service.AssignPermissionsInput{
		UserID:        userID,
		ModuleID:      req.ModuleID,
		PermissionIDs: req.PermissionIDs,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PermissionResponse{BaseResponse: BaseResponse{Ok: true}, Grant: grant})
}

// Update handles PUT /permissions/{userId}/{moduleId}.
func (h *PermissionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, moduleID, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	var req updatePermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	if err := h.permissionService.Update(r.Context(), userID, moduleID, req.PermissionIDs); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Remove handles DELETE /permissions/{userId}/{moduleId}.
func (h *PermissionHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, moduleID, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	if err := h.permissionService.Remove(r.Context(), userID, moduleID); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *PermissionHandler) pathParams(w http.ResponseWriter, r *http.Request) (userID uuid.UUID, moduleID int, ok bool) {
	userID, ok = pathID(w, chi.URLParam(r, "userId"))
	if !ok {
		return userID, 0, false
	}
	moduleID, err := strconv.Atoi(chi.URLParam(r, "moduleId"))
	if err != nil || moduleID <= 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid module id")
		return userID, 0, false
	}
	return userID, moduleID, true
}
