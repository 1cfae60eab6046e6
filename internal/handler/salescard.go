// internal/handler/salescard.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SalesCardHandler struct {
	cardService     *service.SalesCardService
	approvalService *service.ApprovalService
}

func NewSalesCardHandler(cardService *service.SalesCardService, approvalService *service.ApprovalService) *SalesCardHandler {
	return &SalesCardHandler{cardService: cardService, approvalService: approvalService}
}

type createSalesCardRequest struct {
	CustomerID  uuid.UUID `json:"customer_id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
}

type SalesCardResponse struct {
	BaseResponse
	SalesCard *model.SalesCard `json:"sales_card"`
}

func (h *SalesCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req createSalesCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	card, err := h.cardService.Create(r.Context(), caller, service.CreateSalesCardInput{
		CustomerID:  req.CustomerID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SalesCardResponse{BaseResponse: BaseResponse{Ok: true}, SalesCard: card})
}

func (h *SalesCardHandler) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	// A phone query narrows the listing to the customer's recent open deals,
	// used to flag duplicate leads before creating a card.
	if phone := r.URL.Query().Get("phone"); phone != "" {
		cards, err := h.cardService.LatestByCustomerPhone(r.Context(), phone)
		if err != nil {
			handleError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: cards})
		return
	}

	offset, limit := pagination(r)
	cards, total, err := h.cardService.List(r.Context(), caller, offset, limit)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: cards, Total: total})
}

func (h *SalesCardHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	card, err := h.cardService.Get(r.Context(), caller, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SalesCardResponse{BaseResponse: BaseResponse{Ok: true}, SalesCard: card})
}

type updateSalesCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StatusID    int    `json:"status_id"`
}

func (h *SalesCardHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateSalesCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	card, err := h.cardService.Update(r.Context(), caller, id, service.UpdateSalesCardInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		StatusID:    req.StatusID,
	})
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SalesCardResponse{BaseResponse: BaseResponse{Ok: true}, SalesCard: card})
}

func (h *SalesCardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.cardService.SoftDelete(r.Context(), caller, id); err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type submitApprovalRequest struct {
	ImageURL    string   `json:"image_url"`
	NotifyRoles []string `json:"notify_roles"`
}

type ApprovalResponse struct {
	BaseResponse
	Notifications []*model.ApprovalNotification `json:"notifications"`
}

// SubmitApproval handles POST /sales-cards/{id}/submit: the salesperson asks
// for the card to be confirmed as an order.
func (h *SalesCardHandler) SubmitApproval(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req submitApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	roles := make([]model.ReceiverRole, 0, len(req.NotifyRoles))
	for _, raw := range req.NotifyRoles {
		switch role := model.ReceiverRole(raw); role {
		case model.ReceiverSupervisor, model.ReceiverAdmin:
			roles = append(roles, role)
		default:
			respondWithError(w, http.StatusBadRequest, "Unknown notify role")
			return
		}
	}
	if len(roles) == 0 {
		roles = []model.ReceiverRole{model.ReceiverSupervisor, model.ReceiverAdmin}
	}

	notifications, err := h.approvalService.Submit(r.Context(), caller, service.SubmitApprovalInput{
		SalesCardID: id,
		ImageURL:    req.ImageURL,
		NotifyRoles: roles,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ApprovalResponse{BaseResponse: BaseResponse{Ok: true}, Notifications: notifications})
}

type DecisionResponse struct {
	BaseResponse
	Notification *model.ApprovalNotification `json:"notification"`
}

// Approve handles POST /approvals/{id}/approve.
func (h *SalesCardHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	notification, err := h.approvalService.Approve(r.Context(), caller, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DecisionResponse{BaseResponse: BaseResponse{Ok: true}, Notification: notification})
}

// Reject handles POST /approvals/{id}/reject.
func (h *SalesCardHandler) Reject(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	notification, err := h.approvalService.Reject(r.Context(), caller, id)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, DecisionResponse{BaseResponse: BaseResponse{Ok: true}, Notification: notification})
}

// PendingApprovals handles GET /approvals: the caller's open requests.
func (h *SalesCardHandler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	notifications, err := h.approvalService.ListForReceiver(r.Context(), caller)
	if err != nil {
		handleError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ApprovalResponse{BaseResponse: BaseResponse{Ok: true}, Notifications: notifications})
}
