// internal/service/approval.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dealdesk/dealdesk/internal/auth"
	"github.com/dealdesk/dealdesk/internal/domain"
	"github.com/dealdesk/dealdesk/internal/model"
	"github.com/dealdesk/dealdesk/internal/realtime"
	"github.com/dealdesk/dealdesk/internal/repository"
	"github.com/google/uuid"
)

// ApprovalService gates the "Order Confirmed" transition of a sales card
// behind supervisor/admin approval and keeps the two notification channels
// consistent. The dispatcher is an explicit dependency; pushes happen after
// the durable write and never gate it.
type ApprovalService struct {
	approvals  repository.ApprovalNotificationRepositoryIface
	cards      repository.SalesCardRepositoryIface
	users      repository.UserRepositoryIface
	dispatcher realtime.Publisher
}

func NewApprovalService(
	approvals repository.ApprovalNotificationRepositoryIface,
	cards repository.SalesCardRepositoryIface,
	users repository.UserRepositoryIface,
	dispatcher realtime.Publisher,
) *ApprovalService {
	return &ApprovalService{
		approvals:  approvals,
		cards:      cards,
		users:      users,
		dispatcher: dispatcher,
	}
}

type SubmitApprovalInput struct {
	SalesCardID uuid.UUID
	ImageURL    string
	NotifyRoles []model.ReceiverRole
}

// Submit opens an approval cycle for a sales card. One pending notification
// row is created per requested role; an admin channel that cannot be resolved
// from the supervisor chain is skipped without error.
func (s *ApprovalService) Submit(ctx context.Context, caller *auth.Identity, input SubmitApprovalInput) ([]*model.ApprovalNotification, error) {
	card, err := s.cards.FindByID(ctx, input.SalesCardID)
	if err != nil {
		return nil, err
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = card.ImageURL
	}
	if imageURL == "" {
		return nil, domain.ErrImageRequired
	}

	exists, err := s.approvals.ExistsForSalesCard(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("checking pending approvals: %w", err)
	}
	if exists {
		return nil, domain.ErrApprovalPending
	}

	var supervisorID *uuid.UUID
	if card.Salesperson != nil {
		supervisorID = card.Salesperson.SupervisorID
	}

	var created []*model.ApprovalNotification
	for _, role := range input.NotifyRoles {
		receiverID, ok, err := s.resolveReceiver(ctx, role, supervisorID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		notification := &model.ApprovalNotification{
			SalesCardID:  card.ID,
			SenderID:     caller.UserID,
			ReceiverRole: role,
			ReceiverID:   receiverID,
			ImageURL:     imageURL,
			Message:      "Approval required for sales card.",
			Status:       model.ApprovalPending,
		}
		if err := s.approvals.Create(ctx, notification); err != nil {
			return nil, fmt.Errorf("creating approval notification: %w", err)
		}
		created = append(created, notification)

		s.publish(receiverID, realtime.Event{
			Type:     realtime.EventApprovalRequest,
			Title:    "Approval Required",
			Message:  fmt.Sprintf("Sales card %q from customer requires approval.", card.Title),
			ImageURL: imageURL,
		})
	}

	return created, nil
}

// resolveReceiver maps an approval channel to a concrete recipient. The
// supervisor channel is the card owner's direct supervisor; the admin channel
// is that supervisor's admin. ok=false means the channel has nobody behind it.
func (s *ApprovalService) resolveReceiver(ctx context.Context, role model.ReceiverRole, supervisorID *uuid.UUID) (uuid.UUID, bool, error) {
	if supervisorID == nil {
		return uuid.Nil, false, nil
	}

	switch role {
	case model.ReceiverSupervisor:
		return *supervisorID, true, nil
	case model.ReceiverAdmin:
		supervisor, err := s.users.FindByID(ctx, *supervisorID)
		if err != nil {
			return uuid.Nil, false, fmt.Errorf("resolving admin channel: %w", err)
		}
		if supervisor.AdminID == nil {
			return uuid.Nil, false, nil
		}
		return *supervisor.AdminID, true, nil
	default:
		return uuid.Nil, false, nil
	}
}

// Approve finalizes a pending notification as approved: the sales card moves
// to Order Confirmed, the sibling channel is withdrawn, and the salesperson
// is told. The decision itself is a single conditional transaction, so a
// concurrent decision on the same row loses with ErrAlreadyProcessed.
func (s *ApprovalService) Approve(ctx context.Context, caller *auth.Identity, notificationID uuid.UUID) (*model.ApprovalNotification, error) {
	notification, card, err := s.loadForDecision(ctx, caller, notificationID)
	if err != nil {
		return nil, err
	}

	err = s.approvals.Resolve(ctx, repository.ResolveInput{
		NotificationID:  notification.ID,
		SalesCardID:     card.ID,
		ReceiverRole:    notification.ReceiverRole,
		Decision:        model.ApprovalApproved,
		CardTitle:       card.Title,
		CardDescription: card.Description,
		CardImageURL:    notification.ImageURL,
	})
	if err != nil {
		return nil, err
	}
	notification.Status = model.ApprovalApproved

	s.publish(notification.SenderID, realtime.Event{
		Type:     realtime.EventApprovalResult,
		Title:    "Order Confirmed",
		Message:  fmt.Sprintf("Your sales card %q is confirmed.", card.Title),
		ImageURL: notification.ImageURL,
	})

	return notification, nil
}

// Reject mirrors Approve but leaves the sales card untouched and names the
// rejecting role in the event pushed to the salesperson.
func (s *ApprovalService) Reject(ctx context.Context, caller *auth.Identity, notificationID uuid.UUID) (*model.ApprovalNotification, error) {
	notification, card, err := s.loadForDecision(ctx, caller, notificationID)
	if err != nil {
		return nil, err
	}

	err = s.approvals.Resolve(ctx, repository.ResolveInput{
		NotificationID: notification.ID,
		SalesCardID:    card.ID,
		ReceiverRole:   notification.ReceiverRole,
		Decision:       model.ApprovalRejected,
	})
	if err != nil {
		return nil, err
	}
	notification.Status = model.ApprovalRejected

	s.publish(notification.SenderID, realtime.Event{
		Type:     realtime.EventApprovalResult,
		Title:    "Order Rejected",
		Message:  fmt.Sprintf("Your sales card %q was rejected by %s.", card.Title, caller.Role),
		ImageURL: notification.ImageURL,
	})

	return notification, nil
}

// ListForReceiver returns the caller's pending approval requests.
func (s *ApprovalService) ListForReceiver(ctx context.Context, caller *auth.Identity) ([]*model.ApprovalNotification, error) {
	return s.approvals.FindAllByReceiver(ctx, caller.UserID)
}

// loadForDecision runs the shared approve/reject preconditions: the
// notification exists and is still pending, the card exists, and the caller
// acts within their own organization.
func (s *ApprovalService) loadForDecision(ctx context.Context, caller *auth.Identity, notificationID uuid.UUID) (*model.ApprovalNotification, *model.SalesCard, error) {
	notification, err := s.approvals.FindByID(ctx, notificationID)
	if err != nil {
		return nil, nil, err
	}
	if notification.Status != model.ApprovalPending {
		return nil, nil, domain.ErrAlreadyProcessed
	}

	card, err := s.cards.FindByID(ctx, notification.SalesCardID)
	if err != nil {
		return nil, nil, err
	}

	if caller.Role.Scoped() {
		if caller.OrgID == nil || card.Salesperson == nil || card.Salesperson.OrgID == nil ||
			*card.Salesperson.OrgID != *caller.OrgID {
			return nil, nil, domain.ErrWrongOrganization
		}
	}

	return notification, card, nil
}

// publish fires a realtime event without letting delivery problems surface:
// the durable row is the source of truth, the push is a courtesy.
func (s *ApprovalService) publish(userID uuid.UUID, event realtime.Event) {
	if err := s.dispatcher.Publish(userID, event); err != nil {
		slog.Warn("realtime push failed", "user_id", userID, "event", event.Type, "error", err)
	}
}
