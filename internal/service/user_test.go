package service_test

import (
	"context"
	"testing"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/email"
	"github.com/dealdesk/dealdesk/internal/mocks"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type credentialsCapture struct {
	sent []email.CredentialsData
}

func (c *credentialsCapture) SendCredentials(to string, data email.CredentialsData) error {
	c.sent = append(c.sent, data)
	return nil
}

func TestCreateStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()

	t.Run("admin creation provisions an organization", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		users.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").
			Return(nil, domain.ErrUserNotFound)

		var created *model.User
		users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				created = u
				return nil
			})

		svc := service.NewUserService(users, orgs, hasher, mailer)
		user, err := svc.CreateAdmin(context.Background(), service.CreateStaffInput{
			Email:     "admin@example.com",
			FirstName: "Nora",
			OrgName:   "Acme Industrial",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, user.Role)
		require.NotNil(t, created.OrgID)
		require.Len(t, orgs.createdOrgs, 1)
		assert.Equal(t, "Acme Industrial", orgs.createdOrgs[0].Name)
		assert.Equal(t, orgs.createdOrgs[0].ID, *created.OrgID)

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "admin@example.com", mailer.sent[0].Email)
		assert.NotEmpty(t, mailer.sent[0].Password)

		// The mailed password must verify against the stored hash.
		ok, err := hasher.Verify(mailer.sent[0].Password, created.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("admin creation requires an organization name", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		svc := service.NewUserService(users, orgs, hasher, mailer)
		_, err := svc.CreateAdmin(context.Background(), service.CreateStaffInput{
			Email:     "admin@example.com",
			FirstName: "Nora",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, orgs.createdOrgs)
	})

	t.Run("salesperson inherits supervisor links", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		orgID := uuid.New()
		adminID := uuid.New()
		supervisorID := uuid.New()
		caller := &auth.Identity{
			UserID:  supervisorID,
			Role:    model.RoleSupervisor,
			OrgID:   &orgID,
			AdminID: &adminID,
		}

		users.EXPECT().FindByEmail(gomock.Any(), "rep@example.com").
			Return(nil, domain.ErrUserNotFound)

		var created *model.User
		users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				created = u
				return nil
			})

		svc := service.NewUserService(users, orgs, hasher, mailer)
		_, err := svc.CreateSalesperson(context.Background(), caller, service.CreateStaffInput{
			Email:     "rep@example.com",
			FirstName: "Ada",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleSalesperson, created.Role)
		assert.Equal(t, orgID, *created.OrgID)
		assert.Equal(t, adminID, *created.AdminID)
		assert.Equal(t, supervisorID, *created.SupervisorID)
	})

	t.Run("duplicate email is refused", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		orgID := uuid.New()
		caller := &auth.Identity{UserID: uuid.New(), Role: model.RoleAdmin, OrgID: &orgID}

		users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
			Return(&model.User{Email: "taken@example.com"}, nil)

		svc := service.NewUserService(users, orgs, hasher, mailer)
		_, err := svc.CreateSupervisor(context.Background(), caller, service.CreateStaffInput{
			Email:     "taken@example.com",
			FirstName: "Dup",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestRegisterSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()

	t.Run("valid key creates an unscoped superAdmin", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		users.EXPECT().FindByEmail(gomock.Any(), "root@example.com").
			Return(nil, domain.ErrUserNotFound)

		var created *model.User
		var usedKey string
		users.EXPECT().CreateWithRegistrationKey(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User, key string) error {
				created = u
				usedKey = key
				return nil
			})

		svc := service.NewUserService(users, orgs, hasher, mailer)
		user, err := svc.RegisterSuperAdmin(context.Background(), service.RegisterSuperAdminInput{
			Email:           "root@example.com",
			Password:        "first-login-secret",
			FirstName:       "Root",
			RegistrationKey: "bootstrap-key",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleSuperAdmin, user.Role)
		assert.Nil(t, created.OrgID)
		assert.Equal(t, "bootstrap-key", usedKey)

		ok, err := hasher.Verify("first-login-secret", created.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("consumed or unknown key is rejected", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		users.EXPECT().FindByEmail(gomock.Any(), "root@example.com").
			Return(nil, domain.ErrUserNotFound)
		users.EXPECT().CreateWithRegistrationKey(gomock.Any(), gomock.Any(), "stale-key").
			Return(domain.ErrInvalidRegistrationKey)

		svc := service.NewUserService(users, orgs, hasher, mailer)
		_, err := svc.RegisterSuperAdmin(context.Background(), service.RegisterSuperAdminInput{
			Email:           "root@example.com",
			Password:        "first-login-secret",
			FirstName:       "Root",
			RegistrationKey: "stale-key",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRegistrationKey)
	})

	t.Run("duplicate email is refused before touching the key", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		orgs := newFakeOrgRepo()
		mailer := &credentialsCapture{}

		users.EXPECT().FindByEmail(gomock.Any(), "taken@example.com").
			Return(&model.User{Email: "taken@example.com"}, nil)

		svc := service.NewUserService(users, orgs, hasher, mailer)
		_, err := svc.RegisterSuperAdmin(context.Background(), service.RegisterSuperAdminInput{
			Email:           "taken@example.com",
			Password:        "whatever-secret",
			FirstName:       "Dup",
			RegistrationKey: "bootstrap-key",
		})

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

// fakeOrgRepo assigns IDs like the database default would.
type fakeOrgRepo struct {
	createdOrgs []*model.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{}
}

func (f *fakeOrgRepo) Create(_ context.Context, org *model.Organization) error {
	org.ID = uuid.New()
	f.createdOrgs = append(f.createdOrgs, org)
	return nil
}

func (f *fakeOrgRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Organization, error) {
	for _, org := range f.createdOrgs {
		if org.ID == id {
			return org, nil
		}
	}
	return nil, domain.ErrOrganizationNotFound
}

func (f *fakeOrgRepo) Update(_ context.Context, _ *model.Organization) error { return nil }

func (f *fakeOrgRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeOrgRepo) FindAll(_ context.Context, _ string, _, _ int) ([]*model.Organization, int64, error) {
	return f.createdOrgs, int64(len(f.createdOrgs)), nil
}
