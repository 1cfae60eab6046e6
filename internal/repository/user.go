// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserFilter narrows role-scoped listings. A nil OrgID means no organization
// restriction (superAdmin).
type UserFilter struct {
	Role   model.Role
	OrgID  *uuid.UUID
	Search string
	Offset int
	Limit  int
}

type UserRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error) // For mocking support in tests

	Create(ctx context.Context, user *model.User) error
	CreateWithRegistrationKey(ctx context.Context, user *model.User, key string) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	SoftDelete(ctx context.Context, id uuid.UUID, role model.Role) error
	FindAllByRole(ctx context.Context, filter UserFilter) ([]*model.User, int64, error)

	CreateResetToken(ctx context.Context, token *model.PasswordResetToken) error
	FindResetToken(ctx context.Context, email, otp string) (*model.PasswordResetToken, error)
	DeleteResetTokens(ctx context.Context, userID uuid.UUID) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Begin starts a new database transaction and returns a Transaction instance.
func (r *UserRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

// CreateWithRegistrationKey inserts the user and consumes the registration
// key in one transaction. The conditional update on the unused key closes the
// race between two registrations presenting the same key: the loser sees zero
// affected rows and the whole transaction rolls back.
func (r *UserRepository) CreateWithRegistrationKey(ctx context.Context, user *model.User, key string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.RegistrationKey{}).
			Where("key = ? AND is_used = FALSE", key).
			Updates(map[string]interface{}{
				"is_used": true,
				"used_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to consume registration key: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrInvalidRegistrationKey
		}

		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRegistrationKey) {
			return err
		}
		return fmt.Errorf("registering user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).
		Preload("Organization").
		Where("email = ? AND is_deleted = FALSE", email).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ? AND is_deleted = FALSE", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Save(user)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// SoftDelete flags a user of the given role as deleted. The role guard keeps
// an admin endpoint from deleting a user of a different role by id.
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID, role model.Role) error {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND role = ?", id, role).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindAllByRole returns a paginated, optionally searched listing of one role.
func (r *UserRepository) FindAllByRole(ctx context.Context, filter UserFilter) ([]*model.User, int64, error) {
	var users []*model.User
	var count int64

	query := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ? AND is_deleted = FALSE", filter.Role)

	if filter.OrgID != nil {
		query = query.Where("org_id = ?", *filter.OrgID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"email ILIKE ? OR first_name || ' ' || last_name ILIKE ? OR last_name || ' ' || first_name ILIKE ? OR phone ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	result := query.
		Preload("Organization").
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&users)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find users: %w", result.Error)
	}

	return users, count, nil
}

func (r *UserRepository) CreateResetToken(ctx context.Context, token *model.PasswordResetToken) error {
	result := r.db.WithContext(ctx).Create(token)
	if result.Error != nil {
		return fmt.Errorf("failed to create reset token: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) FindResetToken(ctx context.Context, email, otp string) (*model.PasswordResetToken, error) {
	var token model.PasswordResetToken
	result := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = password_reset_tokens.user_id").
		Where("users.email = ? AND password_reset_tokens.otp = ? AND password_reset_tokens.expires_at > ?",
			email, otp, time.Now()).
		First(&token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidOTP
		}
		return nil, fmt.Errorf("failed to find reset token: %w", result.Error)
	}
	return &token, nil
}

func (r *UserRepository) DeleteResetTokens(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PasswordResetToken{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete reset tokens: %w", result.Error)
	}
	return nil
}
