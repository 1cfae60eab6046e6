package service_test

import (
	"context"
	"testing"
	"time"

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

type captureMailer struct {
	resetOTPs []string
}

func (c *captureMailer) SendPasswordResetOTP(to string, data email.PasswordResetData) error {
	c.resetOTPs = append(c.resetOTPs, data.OTP)
	return nil
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	orgID := uuid.New()
	user := &model.User{
		ID:       uuid.New(),
		Email:    "sales@example.com",
		Password: hashed,
		Role:     model.RoleSalesperson,
		OrgID:    &orgID,
	}

	tokens := auth.NewTokenManager("test_secret", time.Hour)
	mailer := &captureMailer{}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		result, err := svc.Login(context.Background(), user.Email, "correct_password")

		require.NoError(t, err)
		claims, err := tokens.Validate(result.Token)
		require.NoError(t, err)
		identity, err := claims.Identity()
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.Equal(t, model.RoleSalesperson, identity.Role)
		require.NotNil(t, identity.OrgID)
		assert.Equal(t, orgID, *identity.OrgID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		_, err := svc.Login(context.Background(), user.Email, "wrong")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	tokens := auth.NewTokenManager("test_secret", time.Hour)

	user := &model.User{
		ID:    uuid.New(),
		Email: "sales@example.com",
		Role:  model.RoleSalesperson,
	}

	t.Run("request mails a six digit code with a 15 minute window", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &captureMailer{}

		users.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
		users.EXPECT().DeleteResetTokens(gomock.Any(), user.ID).Return(nil)

		var stored *model.PasswordResetToken
		users.EXPECT().CreateResetToken(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token *model.PasswordResetToken) error {
				stored = token
				return nil
			})

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		require.NoError(t, svc.RequestPasswordReset(context.Background(), user.Email))

		require.NotNil(t, stored)
		assert.Len(t, stored.OTP, 6)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), stored.ExpiresAt, time.Minute)
		require.Len(t, mailer.resetOTPs, 1)
		assert.Equal(t, stored.OTP, mailer.resetOTPs[0])
	})

	t.Run("unknown email succeeds without a mail", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &captureMailer{}

		users.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, domain.ErrUserNotFound)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		require.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.com"))
		assert.Empty(t, mailer.resetOTPs)
	})

	t.Run("reset replaces the password and consumes the tokens", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &captureMailer{}

		stale, err := hasher.Hash("old_password")
		require.NoError(t, err)
		resetUser := &model.User{ID: user.ID, Email: user.Email, Password: stale}

		gomock.InOrder(
			users.EXPECT().FindResetToken(gomock.Any(), user.Email, "123456").
				Return(&model.PasswordResetToken{UserID: user.ID, OTP: "123456"}, nil),
			users.EXPECT().FindByID(gomock.Any(), user.ID).Return(resetUser, nil),
			users.EXPECT().Update(gomock.Any(), resetUser).Return(nil),
			users.EXPECT().DeleteResetTokens(gomock.Any(), user.ID).Return(nil),
		)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		require.NoError(t, svc.ResetPassword(context.Background(), user.Email, "123456", "new_password"))

		ok, err := hasher.Verify("new_password", resetUser.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("bad OTP is rejected", func(t *testing.T) {
		users := mocks.NewMockUserRepositoryIface(ctrl)
		mailer := &captureMailer{}

		users.EXPECT().FindResetToken(gomock.Any(), user.Email, "000000").
			Return(nil, domain.ErrInvalidOTP)

		svc := service.NewAuthService(users, hasher, tokens, mailer)
		err := svc.ResetPassword(context.Background(), user.Email, "000000", "new_password")

		assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	})
}
