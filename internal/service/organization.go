// internal/service/organization.go
package service

import (
	"context"

	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// OrganizationService is the superAdmin surface over tenants. Organizations
// are normally created implicitly with their admin; this service covers the
// rest of the lifecycle.
type OrganizationService struct {
	orgs repository.OrganizationRepositoryIface
}

func NewOrganizationService(orgs repository.OrganizationRepositoryIface) *OrganizationService {
	return &OrganizationService{orgs: orgs}
}

func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.orgs.FindByID(ctx, id)
}

func (s *OrganizationService) List(ctx context.Context, search string, offset, limit int) ([]*model.Organization, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.orgs.FindAll(ctx, search, offset, limit)
}

func (s *OrganizationService) Rename(ctx context.Context, id uuid.UUID, name string) (*model.Organization, error) {
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	org.Name = name
	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orgs.Delete(ctx, id)
}
