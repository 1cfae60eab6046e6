// internal/service/salescard.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// SalesCardService owns the deal pipeline. Creating a card also opens its
// follow-up task; moving a card to Order Confirmed is only possible through
// the approval workflow, never through a direct update.
type SalesCardService struct {
	cards repository.SalesCardRepositoryIface
	tasks *TaskService
}

func NewSalesCardService(cards repository.SalesCardRepositoryIface, tasks *TaskService) *SalesCardService {
	return &SalesCardService{cards: cards, tasks: tasks}
}

type CreateSalesCardInput struct {
	CustomerID  uuid.UUID
	Title       string
	Description string
	ImageURL    string
}

func (s *SalesCardService) Create(ctx context.Context, caller *auth.Identity, input CreateSalesCardInput) (*model.SalesCard, error) {
	card := &model.SalesCard{
		UserID:      caller.UserID,
		CustomerID:  input.CustomerID,
		StatusID:    model.StatusNewLead,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	// Task creation failure does not undo the card; the card is the primary
	// record and a missing task is recoverable.
	if _, err := s.tasks.Open(ctx, card.ID, caller.UserID); err != nil {
		slog.Error("opening follow-up task failed", "sales_card_id", card.ID, "error", err)
	}

	return card, nil
}

func (s *SalesCardService) Get(ctx context.Context, caller *auth.Identity, id uuid.UUID) (*model.SalesCard, error) {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkCardScope(caller, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *SalesCardService) List(ctx context.Context, caller *auth.Identity, offset, limit int) ([]*model.SalesCard, int64, error) {
	if caller.OrgID == nil {
		return nil, 0, domain.ErrOrganizationNotFound
	}
	if limit <= 0 {
		limit = 20
	}
	return s.cards.FindAllByOrg(ctx, *caller.OrgID, offset, limit)
}

type UpdateSalesCardInput struct {
	Title       string
	Description string
	ImageURL    string
	StatusID    int
}

func (s *SalesCardService) Update(ctx context.Context, caller *auth.Identity, id uuid.UUID, input UpdateSalesCardInput) (*model.SalesCard, error) {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkCardScope(caller, card); err != nil {
		return nil, err
	}

	if input.StatusID == model.StatusOrderConfirmed && card.StatusID != model.StatusOrderConfirmed {
		return nil, fmt.Errorf("%w: order confirmation requires approval", domain.ErrInvalidInput)
	}

	if input.Title != "" {
		card.Title = input.Title
	}
	if input.Description != "" {
		card.Description = input.Description
	}
	if input.ImageURL != "" {
		card.ImageURL = input.ImageURL
	}
	if input.StatusID != 0 {
		card.StatusID = input.StatusID
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *SalesCardService) SoftDelete(ctx context.Context, caller *auth.Identity, id uuid.UUID) error {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkCardScope(caller, card); err != nil {
		return err
	}
	return s.cards.SoftDelete(ctx, id)
}

// LatestByCustomerPhone surfaces the customer's recent open deals, used to
// warn about duplicate leads at card creation time.
func (s *SalesCardService) LatestByCustomerPhone(ctx context.Context, phone string) ([]*model.SalesCard, error) {
	return s.cards.FindLatestByCustomerPhone(ctx, phone)
}

func checkCardScope(caller *auth.Identity, card *model.SalesCard) error {
	if !caller.Role.Scoped() {
		return nil
	}
	if caller.OrgID == nil || card.Salesperson == nil || card.Salesperson.OrgID == nil ||
		*card.Salesperson.OrgID != *caller.OrgID {
		return domain.ErrWrongOrganization
	}
	return nil
}
