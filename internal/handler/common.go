package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// ListResponse wraps paginated collection payloads.
type ListResponse struct {
	BaseResponse
	Items interface{} `json:"items"`
	Total int64       `json:"total,omitempty"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithValidationError flattens validator output into a details list.
func respondWithValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Field()+" failed on "+fe.Tag())
		}
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: &details})
		return
	}
	respondWithError(w, http.StatusBadRequest, "Validation failed")
}

// handleError maps domain sentinels onto HTTP status codes. Handlers with
// endpoint-specific mappings switch locally first and fall back here.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "Not allowed")
	case errors.Is(err, domain.ErrWrongOrganization):
		respondWithError(w, http.StatusForbidden, "Resource belongs to another organization")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrApprovalPending):
		respondWithError(w, http.StatusConflict, "An approval is already pending for this sales card")
	case errors.Is(err, domain.ErrAlreadyProcessed):
		respondWithError(w, http.StatusConflict, "Notification has already been processed")
	case errors.Is(err, domain.ErrDuplicateIteration):
		respondWithError(w, http.StatusConflict, "Iteration label already exists")
	case errors.Is(err, domain.ErrImageRequired):
		respondWithError(w, http.StatusBadRequest, "An image is required to request approval")
	case errors.Is(err, domain.ErrTaskCompleted):
		respondWithError(w, http.StatusConflict, "Task is already completed")
	case errors.Is(err, domain.ErrInvalidOTP):
		respondWithError(w, http.StatusBadRequest, "Invalid or expired OTP")
	case errors.Is(err, domain.ErrInvalidRegistrationKey):
		respondWithError(w, http.StatusBadRequest, "Invalid or used registration key")
	case errors.Is(err, domain.ErrReadPermissionRequired):
		respondWithError(w, http.StatusBadRequest, "Read permission is mandatory and cannot be removed")
	case errors.Is(err, domain.ErrPermissionNotFound):
		respondWithError(w, http.StatusNotFound, "No permissions found for this user and module")
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrSalesCardNotFound),
		errors.Is(err, domain.ErrNotificationNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrIterationNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Resource not found")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// callerFrom pulls the authenticated identity set by the auth middleware.
func callerFrom(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return identity, true
}

// pathID parses a UUID path parameter already extracted by chi.
func pathID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads offset/limit query parameters with defaults.
func pagination(r *http.Request) (offset, limit int) {
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("offset")); err == nil && n >= 0 {
		offset = n
	}
	limit = 20
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 && n <= 100 {
		limit = n
	}
	return offset, limit
}
