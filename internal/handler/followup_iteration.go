// internal/handler/followup_iteration.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type IterationHandler struct {
	iterationService *service.IterationService
}

func NewIterationHandler(iterationService *service.IterationService) *IterationHandler {
	return &IterationHandler{iterationService: iterationService}
}

type iterationRequest struct {
	Iteration string `json:"iteration" validate:"required"`
	Days      int    `json:"days" validate:"required,gt=0"`
}

type IterationResponse struct {
	BaseResponse
	Iteration *model.FollowupIteration `json:"iteration"`
}

func (h *IterationHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req iterationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	iteration, err := h.iterationService.Create(r.Context(), caller, service.IterationInput{
		Iteration: req.Iteration,
		Days:      req.Days,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, IterationResponse{BaseResponse: BaseResponse{Ok: true}, Iteration: iteration})
}

func (h *IterationHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	iterations, err := h.iterationService.List(r.Context(), caller)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: iterations})
}

func (h *IterationHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req iterationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	iteration, err := h.iterationService.Update(r.Context(), caller, id, service.IterationInput{
		Iteration: req.Iteration,
		Days:      req.Days,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, IterationResponse{BaseResponse: BaseResponse{Ok: true}, Iteration: iteration})
}

func (h *IterationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.iterationService.Delete(r.Context(), caller, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
