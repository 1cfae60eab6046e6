// internal/repository/customer.go
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

type CustomerRepositoryIface interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error)
}

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *model.Customer) error {
	result := r.db.WithContext(ctx).Create(customer)
	if result.Error != nil {
		return fmt.Errorf("failed to create customer: %w", result.Error)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	result := r.db.WithContext(ctx).First(&customer, "id = ? AND is_deleted = FALSE", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", result.Error)
	}
	return &customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *model.Customer) error {
	result := r.db.WithContext(ctx).Save(customer)
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	return nil
}

func (r *CustomerRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepository) FindAll(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error) {
	var customers []*model.Customer
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Customer{}).Where("is_deleted = FALSE")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	result := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&customers)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find customers: %w", result.Error)
	}

	return customers, count, nil
}
