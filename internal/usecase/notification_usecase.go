package usecase

import (
	"context"
	"errors"
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"
	"strings"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidRecipient      = errors.New("invalid recipient")
)

// INotificationUseCase backs the notification bell.
//
// Acknowledging a record is what re-arms the sweep for that (order, kind).

type INotificationUseCase interface {
	ListUnacknowledged(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error)
	Acknowledge(ctx context.Context, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListUnacknowledged(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	role = entities.Role(strings.ToUpper(strings.TrimSpace(string(role))))
	if userID == "" && role == "" {
		return nil, ErrInvalidRecipient
	}
	return u.repo.ListUnacknowledged(ctx, userID, role)
}

func (u *NotificationUseCase) Acknowledge(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.Acknowledge(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
