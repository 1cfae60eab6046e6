// internal/repository/salescard.go
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

type SalesCardRepositoryIface interface {
	Create(ctx context.Context, card *model.SalesCard) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SalesCard, error)
	Update(ctx context.Context, card *model.SalesCard) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindAllByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.SalesCard, int64, error)
	FindLatestByCustomerPhone(ctx context.Context, phone string) ([]*model.SalesCard, error)
}

type SalesCardRepository struct {
	db *gorm.DB
}

func NewSalesCardRepository(db *gorm.DB) *SalesCardRepository {
	return &SalesCardRepository{db: db}
}

func (r *SalesCardRepository) Create(ctx context.Context, card *model.SalesCard) error {
	result := r.db.WithContext(ctx).Create(card)
	if result.Error != nil {
		return fmt.Errorf("failed to create sales card: %w", result.Error)
	}
	return nil
}

// FindByID loads a live sales card with its salesperson, customer and status.
// The salesperson preload carries the owning organization for scope checks.
func (r *SalesCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SalesCard, error) {
	var card model.SalesCard
	result := r.db.WithContext(ctx).
		Preload("Salesperson").
		Preload("Customer").
		Preload("Status").
		First(&card, "id = ? AND is_deleted = FALSE", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSalesCardNotFound
		}
		return nil, fmt.Errorf("failed to find sales card: %w", result.Error)
	}
	return &card, nil
}

func (r *SalesCardRepository) Update(ctx context.Context, card *model.SalesCard) error {
	result := r.db.WithContext(ctx).Save(card)
	if result.Error != nil {
		return fmt.Errorf("failed to update sales card: %w", result.Error)
	}
	return nil
}

func (r *SalesCardRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.SalesCard{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sales card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrSalesCardNotFound
	}
	return nil
}

func (r *SalesCardRepository) FindAllByOrg(ctx context.Context, orgID uuid.UUID, offset, limit int) ([]*model.SalesCard, int64, error) {
	var cards []*model.SalesCard
	var count int64

	query := r.db.WithContext(ctx).
		Model(&model.SalesCard{}).
		Joins("JOIN users ON users.id = sales_cards.user_id").
		Where("sales_cards.is_deleted = FALSE AND users.org_id = ?", orgID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales cards: %w", err)
	}

	result := query.
		Preload("Salesperson").
		Preload("Customer").
		Preload("Status").
		Order("sales_cards.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&cards)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find sales cards: %w", result.Error)
	}

	return cards, count, nil
}

// FindLatestByCustomerPhone returns the two most recently touched open cards
// for a customer phone number, skipping already confirmed orders.
func (r *SalesCardRepository) FindLatestByCustomerPhone(ctx context.Context, phone string) ([]*model.SalesCard, error) {
	var cards []*model.SalesCard
	result := r.db.WithContext(ctx).
		Joins("JOIN customers ON customers.id = sales_cards.customer_id").
		Where("sales_cards.is_deleted = FALSE AND customers.phone = ? AND sales_cards.status_id <> ?",
			phone, model.StatusOrderConfirmed).
		Preload("Salesperson").
		Preload("Customer").
		Preload("Status").
		Order("sales_cards.updated_at DESC, sales_cards.created_at DESC").
		Limit(2).
		Find(&cards)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find sales cards: %w", result.Error)
	}
	return cards, nil
}
