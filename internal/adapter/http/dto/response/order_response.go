package response

import (
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase"
	"time"
)

type OrderResponse struct {
	ID             string     `json:"id"`
	Folio          string     `json:"folio"`
	Status         string     `json:"estado"`
	ReceivedAt     time.Time  `json:"fecha_recepcion"`
	RepairedAt     *time.Time `json:"fecha_reparacion,omitempty"`
	TechnicianID   string     `json:"tecnico_id,omitempty"`
	Equipment      string     `json:"equipo"`
	ClientName     string     `json:"cliente_nombre"`
	UpdatedAt      time.Time  `json:"updated_at"`
	AllowedNext    []string   `json:"transiciones_permitidas"`
	TerminalStatus bool       `json:"estado_final"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Folio:          o.Folio,
		Status:         string(o.Status),
		ReceivedAt:     o.ReceivedAt,
		RepairedAt:     o.RepairedAt,
		TechnicianID:   o.TechnicianID,
		Equipment:      o.Equipment(),
		ClientName:     o.ClientName,
		UpdatedAt:      o.UpdatedAt,
		AllowedNext:    statusNames(entities.AllowedTransitions(o.Status)),
		TerminalStatus: o.Status.IsTerminal(),
	}
}

type SemaphoreResponse struct {
	OrderID string `json:"orden_id"`
	Folio   string `json:"folio"`
	Status  string `json:"estado"`
	Color   string `json:"semaforo"`
}

func FromOrderSemaphore(s usecase.OrderSemaphore) SemaphoreResponse {
	return SemaphoreResponse{
		OrderID: s.Order.ID,
		Folio:   s.Order.Folio,
		Status:  string(s.Order.Status),
		Color:   string(s.Color),
	}
}

// FromOrderSemaphores never returns nil so the list serialises as [].
func FromOrderSemaphores(in []usecase.OrderSemaphore) []SemaphoreResponse {
	out := make([]SemaphoreResponse, 0, len(in))
	for _, s := range in {
		out = append(out, FromOrderSemaphore(s))
	}
	return out
}

type TransitionsResponse struct {
	OrderID     string   `json:"orden_id"`
	Transitions []string `json:"transiciones"`
}

func FromTransitions(orderID string, allowed []entities.OrderStatus) TransitionsResponse {
	return TransitionsResponse{OrderID: orderID, Transitions: statusNames(allowed)}
}

func statusNames(in []entities.OrderStatus) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}
