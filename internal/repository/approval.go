// internal/repository/approval.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResolveInput carries everything the atomic resolution needs so no re-reads
// happen inside the transaction.
type ResolveInput struct {
	NotificationID uuid.UUID
	SalesCardID    uuid.UUID
	ReceiverRole   model.ReceiverRole
	Decision       model.ApprovalStatus

	// Card fields persisted when the decision is an approval. Ignored for
	// rejections, which leave the sales card untouched.
	CardTitle       string
	CardDescription string
	CardImageURL    string
}

type ApprovalNotificationRepositoryIface interface {
	Create(ctx context.Context, notification *model.ApprovalNotification) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ApprovalNotification, error)
	ExistsForSalesCard(ctx context.Context, salesCardID uuid.UUID) (bool, error)
	FindAllByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*model.ApprovalNotification, error)
	Resolve(ctx context.Context, input ResolveInput) error
}

type ApprovalNotificationRepository struct {
	db *gorm.DB
}

func NewApprovalNotificationRepository(db *gorm.DB) *ApprovalNotificationRepository {
	return &ApprovalNotificationRepository{db: db}
}

// Create inserts one pending notification. The partial unique index on
// (sales_card_id, receiver_role) over pending rows backs up the service-level
// duplicate check, so a concurrent submit surfaces as ErrApprovalPending here
// instead of a second live row.
func (r *ApprovalNotificationRepository) Create(ctx context.Context, notification *model.ApprovalNotification) error {
	result := r.db.WithContext(ctx).Create(notification)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrApprovalPending
		}
		return fmt.Errorf("failed to create approval notification: %w", result.Error)
	}
	return nil
}

func (r *ApprovalNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ApprovalNotification, error) {
	var notification model.ApprovalNotification
	result := r.db.WithContext(ctx).First(&notification, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to find approval notification: %w", result.Error)
	}
	return &notification, nil
}

// ExistsForSalesCard reports whether the card has a live approval cycle.
// Resolved rows stay behind as audit records and do not block a resubmission.
func (r *ApprovalNotificationRepository) ExistsForSalesCard(ctx context.Context, salesCardID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ApprovalNotification{}).
		Where("sales_card_id = ? AND status = ?", salesCardID, model.ApprovalPending).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to count approval notifications: %w", result.Error)
	}
	return count > 0, nil
}

func (r *ApprovalNotificationRepository) FindAllByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*model.ApprovalNotification, error) {
	var notifications []*model.ApprovalNotification
	result := r.db.WithContext(ctx).
		Preload("SalesCard").
		Preload("SalesCard.Customer").
		Where("receiver_id = ? AND status = ?", receiverID, model.ApprovalPending).
		Order("created_at DESC").
		Find(&notifications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find approval notifications: %w", result.Error)
	}
	return notifications, nil
}

// Resolve finalizes one approval decision atomically: the acting row is moved
// out of pending with a conditional update (the affected-row count closes the
// race between concurrent supervisor and admin decisions), the sales card is
// confirmed when approving, and the sibling role's pending row is removed.
// A crash can therefore never leave a processed and an unprocessed row live.
func (r *ApprovalNotificationRepository) Resolve(ctx context.Context, input ResolveInput) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ApprovalNotification{}).
			Where("id = ? AND status = ?", input.NotificationID, model.ApprovalPending).
			Update("status", input.Decision)
		if result.Error != nil {
			return fmt.Errorf("failed to update approval notification: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAlreadyProcessed
		}

		if input.Decision == model.ApprovalApproved {
			result = tx.Model(&model.SalesCard{}).
				Where("id = ?", input.SalesCardID).
				Updates(map[string]interface{}{
					"status_id":   model.StatusOrderConfirmed,
					"title":       input.CardTitle,
					"description": input.CardDescription,
					"image_url":   input.CardImageURL,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to confirm sales card: %w", result.Error)
			}
		}

		result = tx.
			Where("sales_card_id = ? AND receiver_role = ? AND status = ?",
				input.SalesCardID, input.ReceiverRole.Sibling(), model.ApprovalPending).
			Delete(&model.ApprovalNotification{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove sibling notification: %w", result.Error)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyProcessed) {
			return err
		}
		return fmt.Errorf("resolving approval notification: %w", err)
	}
	return nil
}
