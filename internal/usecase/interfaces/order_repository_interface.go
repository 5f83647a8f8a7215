package interfaces

import (
	"context"
	"errors"
	"ordenes_taller/internal/domain/entities"
	"time"
)

// ErrStatusChanged is returned by UpdateStatus when the order exists but its stored status
// is no longer the one the caller validated against.
var ErrStatusChanged = errors.New("order status changed")

// IOrderRepository abstracts persistence for repair orders.
//
// The lifecycle engine must be able to:
//   - list every order that is not ENTREGADO or CANCELADO (alert sweep, dashboards)
//   - load one order and persist a validated status change
//
// GetByID and UpdateStatus return a zero Order (empty ID) when the order does not exist.
// UpdateStatus only writes when the stored status still equals from.

type IOrderRepository interface {
	ListActive(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, repairedAt *time.Time) (entities.Order, error)
}
