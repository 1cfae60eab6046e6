// internal/service/customer.go
package service

import (
	"context"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

type CustomerService struct {
	customers repository.CustomerRepositoryIface
}

func NewCustomerService(customers repository.CustomerRepositoryIface) *CustomerService {
	return &CustomerService{customers: customers}
}

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*model.Customer, error) {
	customer := &model.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, offset, limit int) ([]*model.Customer, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.customers.FindAll(ctx, offset, limit)
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input CustomerInput) (*model.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		customer.FirstName = input.FirstName
	}
	if input.LastName != "" {
		customer.LastName = input.LastName
	}
	if input.Email != "" {
		customer.Email = input.Email
	}
	if input.Phone != "" {
		customer.Phone = input.Phone
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return s.customers.SoftDelete(ctx, id)
}
