// internal/handler/user.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

// UserHandler exposes staff management. Route-level role middleware decides
// who may call which creation endpoint; the handler maps payloads.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type registerSuperAdminRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	RegistrationKey string `json:"registration_key" validate:"required"`
}

// RegisterSuperAdmin handles POST /auth/register-superadmin, the unauthenticated
// bootstrap path gated by a single-use registration key.
func (h *UserHandler) RegisterSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var req registerSuperAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return
	}

	user, err := h.userService.RegisterSuperAdmin(r.Context(), service.RegisterSuperAdminInput{
		Email:           req.Email,
		Password:        req.Password,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		RegistrationKey: req.RegistrationKey,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

type createStaffRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	OrgName   string `json:"org_name"`
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

func (h *UserHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeStaff(w, r)
	if !ok {
		return
	}

	user, err := h.userService.CreateAdmin(r.Context(), service.CreateStaffInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		OrgName:   req.OrgName,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

func (h *UserHandler) CreateSupervisor(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeStaff(w, r)
	if !ok {
		return
	}

	user, err := h.userService.CreateSupervisor(r.Context(), caller, service.CreateStaffInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

func (h *UserHandler) CreateSalesperson(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	req, ok := h.decodeStaff(w, r)
	if !ok {
		return
	}

	user, err := h.userService.CreateSalesperson(r.Context(), caller, service.CreateStaffInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

func (h *UserHandler) decodeStaff(w http.ResponseWriter, r *http.Request) (createStaffRequest, bool) {
	var req createStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return req, false
	}
	defer r.Body.Close()

	if err := validate.Struct(req); err != nil {
		respondWithValidationError(w, err)
		return req, false
	}
	return req, true
}

// ListByRole handles GET /users?role=supervisor&search=...
func (h *UserHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	role := model.Role(r.URL.Query().Get("role"))
	switch role {
	case model.RoleAdmin, model.RoleSupervisor, model.RoleSalesperson:
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown role")
		return
	}

	offset, limit := pagination(r)
	users, total, err := h.userService.ListByRole(r.Context(), caller, repository.UserFilter{
		Role:   role,
		Search: r.URL.Query().Get("search"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: users, Total: total})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	user, err := h.userService.Get(r.Context(), caller, id)
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

type updateStaffRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req updateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Update(r.Context(), caller, id, service.UpdateStaffInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserResponse{BaseResponse: BaseResponse{Ok: true}, User: user})
}

// Delete handles DELETE /users/{id}?role=salesperson. The role guard keeps a
// caller from deleting an account of an unexpected role by id.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	role := model.Role(r.URL.Query().Get("role"))
	switch role {
	case model.RoleAdmin, model.RoleSupervisor, model.RoleSalesperson:
	default:
		respondWithError(w, http.StatusBadRequest, "Unknown role")
		return
	}

	if err := h.userService.SoftDelete(r.Context(), caller, id, role); err != nil {
		handleError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
