// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	orgs, total, err := h.orgService.List(r.Context(), r.URL.Query().Get("search"), offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: orgs, Total: total})
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	org, err := h.orgService.Get(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse: BaseResponse{Ok: true}, Organization: org})
}

type renameOrganizationRequest struct {
	Name string `json:"org_name" validate:"required"`
}

func (h *OrganizationHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req renameOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	org, err := h.orgService.Rename(r.Context(), id, req.Name)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, OrganizationResponse{BaseResponse: BaseResponse{Ok: true}, Organization: org})
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.orgService.Delete(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
