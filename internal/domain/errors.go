// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidOTP             = errors.New("invalid or expired otp")
	ErrInvalidRegistrationKey = errors.New("invalid or used registration key")

	// Permission errors
	ErrPermissionNotFound     = errors.New("no permissions found for this user and module")
	ErrReadPermissionRequired = errors.New("read permission is mandatory for access")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrWrongOrganization    = errors.New("record belongs to another organization")

	// Customer / sales card errors
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrSalesCardNotFound = errors.New("sales card not found")

	// Approval workflow errors
	ErrImageRequired        = errors.New("image is required to confirm the order")
	ErrApprovalPending      = errors.New("approval request already pending")
	ErrAlreadyProcessed     = errors.New("notification already processed")
	ErrNotificationNotFound = errors.New("notification not found")

	// Task / follow-up errors
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskCompleted      = errors.New("task already completed")
	ErrIterationNotFound  = errors.New("follow-up iteration not found")
	ErrDuplicateIteration = errors.New("follow-up iteration already exists")
)
