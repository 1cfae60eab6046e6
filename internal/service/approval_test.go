package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/mocks"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/realtime"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/dealdesk/dealdesk/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type approvalFixture struct {
	orgID        uuid.UUID
	salesperson  *model.User
	supervisorID uuid.UUID
	adminID      uuid.UUID
	card         *model.SalesCard
	caller       *auth.Identity
}

func newApprovalFixture() *approvalFixture {
	orgID := uuid.New()
	supervisorID := uuid.New()
	adminID := uuid.New()
	salespersonID := uuid.New()

	salesperson := &model.User{
		ID:           salespersonID,
		Role:         model.RoleSalesperson,
		OrgID:        &orgID,
		SupervisorID: &supervisorID,
		AdminID:      &adminID,
	}

	return &approvalFixture{
		orgID:        orgID,
		salesperson:  salesperson,
		supervisorID: supervisorID,
		adminID:      adminID,
		card: &model.SalesCard{
			ID:          uuid.New(),
			UserID:      salespersonID,
			StatusID:    model.StatusNegotiation,
			Title:       "Forklift order",
			Description: "Three units",
			ImageURL:    "https://cdn.example.com/quote.png",
			Salesperson: salesperson,
		},
		caller: &auth.Identity{
			UserID: salespersonID,
			Role:   model.RoleSalesperson,
			OrgID:  &orgID,
		},
	}
}

func TestSubmitApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("creates one notification per channel", func(t *testing.T) {
		fx := newApprovalFixture()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)
		users.EXPECT().FindByID(gomock.Any(), fx.supervisorID).
			Return(&model.User{ID: fx.supervisorID, Role: model.RoleSupervisor, AdminID: &fx.adminID}, nil)

		var created []*model.ApprovalNotification
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n *model.ApprovalNotification) error {
				created = append(created, n)
				return nil
			}).Times(2)
		dispatcher.EXPECT().Publish(fx.supervisorID, gomock.Any()).Return(nil)
		dispatcher.EXPECT().Publish(fx.adminID, gomock.Any()).Return(nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		notifications, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor, model.ReceiverAdmin},
		})

		require.NoError(t, err)
		require.Len(t, notifications, 2)
		assert.Equal(t, fx.supervisorID, created[0].ReceiverID)
		assert.Equal(t, model.ReceiverSupervisor, created[0].ReceiverRole)
		assert.Equal(t, fx.adminID, created[1].ReceiverID)
		assert.Equal(t, model.ReceiverAdmin, created[1].ReceiverRole)
		for _, n := range created {
			assert.Equal(t, model.ApprovalPending, n.Status)
			assert.Equal(t, fx.caller.UserID, n.SenderID)
			assert.Equal(t, fx.card.ImageURL, n.ImageURL)
		}
	})

	t.Run("requires an image", func(t *testing.T) {
		fx := newApprovalFixture()
		fx.card.ImageURL = ""
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor},
		})

		assert.ErrorIs(t, err, domain.ErrImageRequired)
	})

	t.Run("request image overrides missing card image", func(t *testing.T) {
		fx := newApprovalFixture()
		fx.card.ImageURL = ""
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		dispatcher.EXPECT().Publish(fx.supervisorID, gomock.Any()).Return(nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		notifications, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			ImageURL:    "https://cdn.example.com/signed.png",
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor},
		})

		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, "https://cdn.example.com/signed.png", notifications[0].ImageURL)
	})

	t.Run("rejects a second submission while one is pending", func(t *testing.T) {
		fx := newApprovalFixture()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(true, nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor},
		})

		assert.ErrorIs(t, err, domain.ErrApprovalPending)
	})

	t.Run("concurrent submission losing at the unique index", func(t *testing.T) {
		// The pending check passed for both submitters; the partial unique
		// index rejects the second insert and the repository reports it as a
		// pending conflict.
		fx := newApprovalFixture()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(domain.ErrApprovalPending)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor},
		})

		assert.ErrorIs(t, err, domain.ErrApprovalPending)
	})

	t.Run("skips the admin channel when the supervisor has no admin", func(t *testing.T) {
		fx := newApprovalFixture()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)
		users.EXPECT().FindByID(gomock.Any(), fx.supervisorID).
			Return(&model.User{ID: fx.supervisorID, Role: model.RoleSupervisor}, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		dispatcher.EXPECT().Publish(fx.supervisorID, gomock.Any()).Return(nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		notifications, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor, model.ReceiverAdmin},
		})

		require.NoError(t, err)
		require.Len(t, notifications, 1)
		assert.Equal(t, model.ReceiverSupervisor, notifications[0].ReceiverRole)
	})

	t.Run("skips every channel when the salesperson has no supervisor", func(t *testing.T) {
		fx := newApprovalFixture()
		fx.salesperson.SupervisorID = nil
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		notifications, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor, model.ReceiverAdmin},
		})

		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("push failure does not fail the submission", func(t *testing.T) {
		fx := newApprovalFixture()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().ExistsForSalesCard(gomock.Any(), fx.card.ID).Return(false, nil)
		approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		dispatcher.EXPECT().Publish(fx.supervisorID, gomock.Any()).
			Return(errors.New("user not connected"))

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		notifications, err := svc.Submit(context.Background(), fx.caller, service.SubmitApprovalInput{
			SalesCardID: fx.card.ID,
			NotifyRoles: []model.ReceiverRole{model.ReceiverSupervisor},
		})

		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})
}

func TestApproveNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	supervisorCaller := func(fx *approvalFixture) *auth.Identity {
		return &auth.Identity{UserID: fx.supervisorID, Role: model.RoleSupervisor, OrgID: &fx.orgID}
	}

	pendingNotification := func(fx *approvalFixture) *model.ApprovalNotification {
		return &model.ApprovalNotification{
			ID:           uuid.New(),
			SalesCardID:  fx.card.ID,
			SenderID:     fx.caller.UserID,
			ReceiverRole: model.ReceiverSupervisor,
			ReceiverID:   fx.supervisorID,
			ImageURL:     fx.card.ImageURL,
			Status:       model.ApprovalPending,
		}
	}

	t.Run("confirms the card and resolves atomically", func(t *testing.T) {
		fx := newApprovalFixture()
		notification := pendingNotification(fx)
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		approvals.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)
		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().Resolve(gomock.Any(), repository.ResolveInput{
			NotificationID:  notification.ID,
			SalesCardID:     fx.card.ID,
			ReceiverRole:    model.ReceiverSupervisor,
			Decision:        model.ApprovalApproved,
			CardTitle:       fx.card.Title,
			CardDescription: fx.card.Description,
			CardImageURL:    notification.ImageURL,
		}).Return(nil)
		dispatcher.EXPECT().Publish(notification.SenderID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, event realtime.Event) error {
				assert.Equal(t, realtime.EventApprovalResult, event.Type)
				assert.Equal(t, "Order Confirmed", event.Title)
				return nil
			})

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		resolved, err := svc.Approve(context.Background(), supervisorCaller(fx), notification.ID)

		require.NoError(t, err)
		assert.Equal(t, model.ApprovalApproved, resolved.Status)
	})

	t.Run("already processed notification is refused", func(t *testing.T) {
		fx := newApprovalFixture()
		notification := pendingNotification(fx)
		notification.Status = model.ApprovalApproved
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		approvals.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Approve(context.Background(), supervisorCaller(fx), notification.ID)

		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})

	t.Run("concurrent decision loses at the conditional update", func(t *testing.T) {
		fx := newApprovalFixture()
		notification := pendingNotification(fx)
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		approvals.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)
		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyProcessed)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Approve(context.Background(), supervisorCaller(fx), notification.ID)

		assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	})

	t.Run("caller from another organization is refused", func(t *testing.T) {
		fx := newApprovalFixture()
		notification := pendingNotification(fx)
		otherOrg := uuid.New()
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		approvals.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)
		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		_, err := svc.Approve(context.Background(), &auth.Identity{
			UserID: uuid.New(),
			Role:   model.RoleSupervisor,
			OrgID:  &otherOrg,
		}, notification.ID)

		assert.ErrorIs(t, err, domain.ErrWrongOrganization)
	})

	t.Run("reject leaves the card untouched", func(t *testing.T) {
		fx := newApprovalFixture()
		notification := pendingNotification(fx)
		approvals := mocks.NewMockApprovalNotificationRepositoryIface(ctrl)
		cards := mocks.NewMockSalesCardRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		dispatcher := mocks.NewMockPublisher(ctrl)

		approvals.EXPECT().FindByID(gomock.Any(), notification.ID).Return(notification, nil)
		cards.EXPECT().FindByID(gomock.Any(), fx.card.ID).Return(fx.card, nil)
		approvals.EXPECT().Resolve(gomock.Any(), repository.ResolveInput{
			NotificationID: notification.ID,
			SalesCardID:    fx.card.ID,
			ReceiverRole:   model.ReceiverSupervisor,
			Decision:       model.ApprovalRejected,
		}).Return(nil)
		dispatcher.EXPECT().Publish(notification.SenderID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, event realtime.Event) error {
				assert.Contains(t, event.Message, "rejected by supervisor")
				return nil
			})

		svc := service.NewApprovalService(approvals, cards, users, dispatcher)
		resolved, err := svc.Reject(context.Background(), supervisorCaller(fx), notification.ID)

		require.NoError(t, err)
		assert.Equal(t, model.ApprovalRejected, resolved.Status)
	})
}
