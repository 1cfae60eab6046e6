// internal/service/auth.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/email"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// resetOTPExpiry bounds how long a password-reset code stays valid.
const resetOTPExpiry = 15 * time.Minute

// ResetMailer is the slice of the email service the auth flow needs.
type ResetMailer interface {
	SendPasswordResetOTP(to string, data email.PasswordResetData) error
}

type AuthService struct {
	users  repository.UserRepositoryIface
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
	mailer ResetMailer
}

func NewAuthService(
	users repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
	mailer ResetMailer,
) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		mailer: mailer,
	}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

// RequestPasswordReset issues a fresh OTP, invalidating any earlier ones, and
// mails it. An unknown email returns success to keep account existence
// unguessable.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		slog.Info("password reset requested for unknown email")
		return nil
	}

	if err := s.users.DeleteResetTokens(ctx, user.ID); err != nil {
		return err
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return fmt.Errorf("generating otp: %w", err)
	}

	token := &model.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		OTP:       otp,
		ExpiresAt: time.Now().Add(resetOTPExpiry),
	}
	if err := s.users.CreateResetToken(ctx, token); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordResetOTP(user.Email, email.PasswordResetData{OTP: otp}); err != nil {
		return fmt.Errorf("sending reset mail: %w", err)
	}
	return nil
}

// ResetPassword verifies the OTP and replaces the password, consuming all of
// the user's outstanding reset tokens.
func (s *AuthService) ResetPassword(ctx context.Context, emailAddr, otp, newPassword string) error {
	token, err := s.users.FindResetToken(ctx, emailAddr, otp)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.Password = hashed

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.users.DeleteResetTokens(ctx, user.ID)
}

// ChangePassword replaces the caller's password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(current, user.Password)
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hashed, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	user.Password = hashed
	return s.users.Update(ctx, user)
}
