// internal/service/followup_iteration.go
package service

import (
	"context"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// IterationService manages an organization's follow-up cadence. New entries
// append to the end of the position order; labels are unique per organization.
type IterationService struct {
	iterations repository.FollowupIterationRepositoryIface
}

func NewIterationService(iterations repository.FollowupIterationRepositoryIface) *IterationService {
	return &IterationService{iterations: iterations}
}

type IterationInput struct {
	Iteration string
	Days      int
}

func (s *IterationService) Create(ctx context.Context, caller *auth.Identity, input IterationInput) (*model.FollowupIteration, error) {
	if caller.OrgID == nil {
		return nil, domain.ErrOrganizationNotFound
	}

	exists, err := s.iterations.Exists(ctx, *caller.OrgID, input.Iteration)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateIteration
	}

	existing, err := s.iterations.FindAllByOrg(ctx, *caller.OrgID)
	if err != nil {
		return nil, err
	}

	iteration := &model.FollowupIteration{
		OrgID:     *caller.OrgID,
		Iteration: input.Iteration,
		Days:      input.Days,
		Position:  len(existing) + 1,
	}
	if err := s.iterations.Create(ctx, iteration); err != nil {
		return nil, err
	}
	return iteration, nil
}

func (s *IterationService) List(ctx context.Context, caller *auth.Identity) ([]model.FollowupIteration, error) {
	if caller.OrgID == nil {
		return nil, domain.ErrOrganizationNotFound
	}
	return s.iterations.FindAllByOrg(ctx, *caller.OrgID)
}

func (s *IterationService) Update(ctx context.Context, caller *auth.Identity, id uuid.UUID, input IterationInput) (*model.FollowupIteration, error) {
	if caller.OrgID == nil {
		return nil, domain.ErrOrganizationNotFound
	}

	iteration, err := s.iterations.FindByID(ctx, id, *caller.OrgID)
	if err != nil {
		return nil, err
	}

	if input.Iteration != "" && input.Iteration != iteration.Iteration {
		exists, err := s.iterations.Exists(ctx, *caller.OrgID, input.Iteration)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateIteration
		}
		iteration.Iteration = input.Iteration
	}
	if input.Days > 0 {
		iteration.Days = input.Days
	}

	if err := s.iterations.Update(ctx, iteration); err != nil {
		return nil, err
	}
	return iteration, nil
}

func (s *IterationService) Delete(ctx context.Context, caller *auth.Identity, id uuid.UUID) error {
	if caller.OrgID == nil {
		return domain.ErrOrganizationNotFound
	}
	return s.iterations.Delete(ctx, id, *caller.OrgID)
}
