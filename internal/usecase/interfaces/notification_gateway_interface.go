package interfaces

import (
	"context"
	"ordenes_taller/internal/domain/entities"
)

// INotificationGateway is the write/read surface the alert sweep needs from the notification store.
//
// HasUnacknowledged backs the anti-spam rule: while a record for (order, kind) is unread,
// the sweep does not create another one.
type INotificationGateway interface {
	HasUnacknowledged(ctx context.Context, orderID string, kind entities.AlertKind) (bool, error)
	CreateForRoles(ctx context.Context, roles []entities.Role, n entities.NewNotification) error
	CreateForUser(ctx context.Context, userID string, n entities.NewNotification) error
}

// INotificationRepository serves the notification bell.
//
// Acknowledge returns a zero Notification (empty ID) when the record does not exist.
type INotificationRepository interface {
	ListUnacknowledged(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error)
	Acknowledge(ctx context.Context, id string) (entities.Notification, error)
}
