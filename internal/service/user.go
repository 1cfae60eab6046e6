// internal/service/user.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/email"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// CredentialsMailer is the slice of the email service the user service needs.
type CredentialsMailer interface {
	SendCredentials(to string, data email.CredentialsData) error
}

// UserService manages the staff hierarchy: superAdmin creates admins (each
// with a fresh organization), admins create supervisors, supervisors create
// salespeople. Every created account gets a generated password mailed to it.
type UserService struct {
	users  repository.UserRepositoryIface
	orgs   repository.OrganizationRepositoryIface
	hasher *auth.PasswordHasher
	mailer CredentialsMailer
}

func NewUserService(
	users repository.UserRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	hasher *auth.PasswordHasher,
	mailer CredentialsMailer,
) *UserService {
	return &UserService{
		users:  users,
		orgs:   orgs,
		hasher: hasher,
		mailer: mailer,
	}
}

type RegisterSuperAdminInput struct {
	Email           string
	Password        string
	FirstName       string
	LastName        string
	Phone           string
	RegistrationKey string
}

// RegisterSuperAdmin bootstraps the hierarchy: a superAdmin registers itself
// with a single-use key issued out of band, so an empty deployment can reach a
// working login without manual inserts. The key is consumed atomically with
// the user insert.
func (s *UserService) RegisterSuperAdmin(ctx context.Context, input RegisterSuperAdminInput) (*model.User, error) {
	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:     input.Email,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      model.RoleSuperAdmin,
	}
	if err := s.users.CreateWithRegistrationKey(ctx, user, input.RegistrationKey); err != nil {
		return nil, err
	}
	return user, nil
}

type CreateStaffInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	OrgName   string // admins only: name for the new organization
}

// CreateAdmin provisions a new organization and its admin account. The two
// inserts run sequentially; if the user insert fails the organization row is
// left behind and logged for cleanup rather than compensated automatically.
func (s *UserService) CreateAdmin(ctx context.Context, input CreateStaffInput) (*model.User, error) {
	if input.OrgName == "" {
		return nil, fmt.Errorf("%w: organization name is required", domain.ErrInvalidInput)
	}

	org := &model.Organization{Name: input.OrgName}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}

	user, err := s.createStaff(ctx, input, model.RoleAdmin, &org.ID, nil, nil)
	if err != nil {
		slog.Error("admin creation failed after organization insert", "org_id", org.ID, "error", err)
		return nil, err
	}
	user.Organization = org
	return user, nil
}

// CreateSupervisor creates a supervisor inside the admin caller's
// organization, linked back to the admin for approval routing.
func (s *UserService) CreateSupervisor(ctx context.Context, caller *auth.Identity, input CreateStaffInput) (*model.User, error) {
	if caller.OrgID == nil {
		return nil, domain.ErrOrganizationNotFound
	}
	adminID := caller.UserID
	return s.createStaff(ctx, input, model.RoleSupervisor, caller.OrgID, &adminID, nil)
}

// CreateSalesperson creates a salesperson under the supervisor caller,
// inheriting the supervisor's organization and admin link.
func (s *UserService) CreateSalesperson(ctx context.Context, caller *auth.Identity, input CreateStaffInput) (*model.User, error) {
	if caller.OrgID == nil {
		return nil, domain.ErrOrganizationNotFound
	}
	supervisorID := caller.UserID
	return s.createStaff(ctx, input, model.RoleSalesperson, caller.OrgID, caller.AdminID, &supervisorID)
}

func (s *UserService) createStaff(ctx context.Context, input CreateStaffInput, role model.Role, orgID, adminID, supervisorID *uuid.UUID) (*model.User, error) {
	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	password, err := auth.GeneratePassword(12)
	if err != nil {
		return nil, fmt.Errorf("generating password: %w", err)
	}
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		Password:     hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         role,
		OrgID:        orgID,
		AdminID:      adminID,
		SupervisorID: supervisorID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// The account exists either way; a lost mail means a password reset, not
	// a failed creation.
	if err := s.mailer.SendCredentials(user.Email, email.CredentialsData{
		Role:     string(role),
		Email:    user.Email,
		Password: password,
	}); err != nil {
		slog.Error("credentials mail failed", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// ListByRole returns one role's accounts, confined to the caller's
// organization for scoped callers.
func (s *UserService) ListByRole(ctx context.Context, caller *auth.Identity, filter repository.UserFilter) ([]*model.User, int64, error) {
	if caller.Role.Scoped() {
		filter.OrgID = caller.OrgID
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.users.FindAllByRole(ctx, filter)
}

func (s *UserService) Get(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkUserScope(caller, user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateStaffInput struct {
	FirstName string
	LastName  string
	Phone     string
}

func (s *UserService) Update(ctx context.Context, caller *auth.Identity, id uuid.UUID, input UpdateStaffInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkUserScope(caller, user); err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SoftDelete(ctx context.Context, caller *auth.Identity, id uuid.UUID, role model.Role) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkUserScope(caller, user); err != nil {
		return err
	}
	return s.users.SoftDelete(ctx, id, role)
}

func checkUserScope(caller *auth.Identity, user *model.User) error {
	if !caller.Role.Scoped() {
		return nil
	}
	if caller.OrgID == nil || user.OrgID == nil || *user.OrgID != *caller.OrgID {
		return domain.ErrWrongOrganization
	}
	return nil
}
