package usecase

import (
	"context"
	"errors"
	"log"
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"
	"strings"
	"time"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderClosed       = errors.New("order is closed")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)

// OrderSemaphore pairs an order with its live semáforo color.
type OrderSemaphore struct {
	Order entities.Order
	Color entities.SemaphoreColor
}

// IOrderUseCase is the order-editing workflow around the lifecycle engine:
//   - ChangeStatus validates every move against the transition graph before persisting it
//   - Semaphore/ListActiveSemaphores expose live colors for dashboards and list views

type IOrderUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ChangeStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error)
	AllowedTransitions(ctx context.Context, id string) ([]entities.OrderStatus, error)
	Semaphore(ctx context.Context, id string) (OrderSemaphore, error)
	ListActiveSemaphores(ctx context.Context) ([]OrderSemaphore, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
	now  func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, now: time.Now}
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ChangeStatus(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error) {
	if !to.IsValid() {
		return entities.Order{}, ErrInvalidStatus
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if current.Status == to {
		return current, nil
	}
	if !entities.IsValidTransition(current.Status, to) {
		log.Printf("[order][usecase] rejected transition order_id=%s from=%s to=%s", current.ID, current.Status, to)
		return entities.Order{}, ErrInvalidTransition
	}

	repairedAt := current.RepairedAt
	if to == entities.OrderStatusReparado {
		now := u.now().UTC()
		repairedAt = &now
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, to, repairedAt)
	if errors.Is(err, interfaces.ErrStatusChanged) {
		log.Printf("[order][usecase] status changed before write order_id=%s from=%s to=%s", current.ID, current.Status, to)
		return entities.Order{}, ErrStatusConflict
	}
	if err != nil {
		log.Printf("[order][usecase] update status failed order_id=%s to=%s err=%v", current.ID, to, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status changed order_id=%s folio=%s from=%s to=%s", updated.ID, updated.Folio, current.Status, updated.Status)
	return updated, nil
}

func (u *OrderUseCase) AllowedTransitions(ctx context.Context, id string) ([]entities.OrderStatus, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return entities.AllowedTransitions(o.Status), nil
}

func (u *OrderUseCase) Semaphore(ctx context.Context, id string) (OrderSemaphore, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return OrderSemaphore{}, err
	}
	if o.Status.IsClosed() {
		return OrderSemaphore{}, ErrOrderClosed
	}
	return OrderSemaphore{Order: o, Color: entities.ClassifySemaphore(o, u.now())}, nil
}

func (u *OrderUseCase) ListActiveSemaphores(ctx context.Context) ([]OrderSemaphore, error) {
	orders, err := u.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]OrderSemaphore, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsClosed() {
			continue
		}
		out = append(out, OrderSemaphore{Order: o, Color: entities.ClassifySemaphore(o, now)})
	}
	return out, nil
}
