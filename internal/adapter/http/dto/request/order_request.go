package request

import (
	"errors"
	"ordenes_taller/internal/domain/entities"
)

var (
	ErrUnknownStatus = errors.New("unknown order status")
)

// ChangeStatusRequest moves an order to a new workflow state.
type ChangeStatusRequest struct {
	Status string `json:"estado" binding:"required"`
}

// ResolveStatus accepts the status name in any case.
func (r ChangeStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	s, ok := entities.ParseOrderStatus(r.Status)
	if !ok {
		return "", ErrUnknownStatus
	}
	return s, nil
}
