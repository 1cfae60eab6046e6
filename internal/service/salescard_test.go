package service_test

import (
	"context"
	"testing"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/mocks"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateSalesCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	salespersonID := uuid.New()
	caller := &auth.Identity{UserID: salespersonID, Role: model.RoleSalesperson, OrgID: &orgID}

	t.Run("card creation opens the follow-up task", func(t *testing.T) {
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		tasks := mocks.NewMockTaskRepositoryIface(ctrl)
		iterations := mocks.NewMockFollowupIterationRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)

		cards.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, card *model.SalesCard) error {
				card.ID = uuid.New()
				return nil
			})
		users.EXPECT().FindByID(gomock.Any(), salespersonID).
			Return(&model.User{ID: salespersonID, OrgID: &orgID}, nil)
		iterations.EXPECT().FindAllByOrg(gomock.Any(), orgID).Return(nil, nil)
		tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		tasks.EXPECT().CreateFollowup(gomock.Any(), gomock.Any()).Return(nil)

		taskSvc := service.NewTaskService(tasks, iterations, users)
		svc := service.NewSalesCardService(cards, taskSvc)

		card, err := svc.Create(context.Background(), caller, service.CreateSalesCardInput{
			CustomerID: uuid.New(),
			Title:      "Conveyor retrofit",
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusNewLead, card.StatusID)
		assert.Equal(t, salespersonID, card.UserID)
	})

	t.Run("direct order confirmation is refused", func(t *testing.T) {
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		tasks := mocks.NewMockTaskRepositoryIface(ctrl)
		iterations := mocks.NewMockFollowupIterationRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)

		cardID := uuid.New()
		cards.EXPECT().FindByID(gomock.Any(), cardID).Return(&model.SalesCard{
			ID:          cardID,
			UserID:      salespersonID,
			StatusID:    model.StatusNegotiation,
			Salesperson: &model.User{ID: salespersonID, OrgID: &orgID},
		}, nil)

		taskSvc := service.NewTaskService(tasks, iterations, users)
		svc := service.NewSalesCardService(cards, taskSvc)

		_, err := svc.Update(context.Background(), caller, cardID, service.UpdateSalesCardInput{
			StatusID: model.StatusOrderConfirmed,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cross-organization access is refused", func(t *testing.T) {
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		tasks := mocks.NewMockTaskRepositoryIface(ctrl)
		iterations := mocks.NewMockFollowupIterationRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)

		otherOrg := uuid.New()
		cardID := uuid.New()
		cards.EXPECT().FindByID(gomock.Any(), cardID).Return(&model.SalesCard{
			ID:          cardID,
			Salesperson: &model.User{ID: uuid.New(), OrgID: &otherOrg},
		}, nil)

		taskSvc := service.NewTaskService(tasks, iterations, users)
		svc := service.NewSalesCardService(cards, taskSvc)

		_, err := svc.Get(context.Background(), caller, cardID)

		assert.ErrorIs(t, err, domain.ErrWrongOrganization)
	})
}
