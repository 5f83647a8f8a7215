package entities

import (
	"errors"
	"strings"
	"time"
)

// OrderStatus represents the lifecycle state (estado) of a repair order.
//
// The set of values is closed. Legal moves between them are defined in transitions.go.

type OrderStatus string

const (
	OrderStatusRecibido            OrderStatus = "RECIBIDO"
	OrderStatusEnDiagnostico       OrderStatus = "EN_DIAGNOSTICO"
	OrderStatusEsperaRefacciones   OrderStatus = "ESPERA_REFACCIONES"
	OrderStatusCotizacionPendiente OrderStatus = "COTIZACION_PENDIENTE"
	OrderStatusEnReparacion        OrderStatus = "EN_REPARACION"
	OrderStatusReparado            OrderStatus = "REPARADO"
	OrderStatusListoEntrega        OrderStatus = "LISTO_ENTREGA"
	OrderStatusEntregado           OrderStatus = "ENTREGADO"
	OrderStatusCancelado           OrderStatus = "CANCELADO"
)

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{
	OrderStatusRecibido,
	OrderStatusEnDiagnostico,
	OrderStatusEsperaRefacciones,
	OrderStatusCotizacionPendiente,
	OrderStatusEnReparacion,
	OrderStatusReparado,
	OrderStatusListoEntrega,
	OrderStatusEntregado,
	OrderStatusCancelado,
}

var (
	ErrOrderMissingID         = errors.New("order without id")
	ErrOrderUnknownStatus     = errors.New("order with unknown status")
	ErrOrderMissingReceivedAt = errors.New("order without reception date")
)

// ParseOrderStatus normalizes user input ("en_reparacion", " REPARADO ") into a known status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

func (s OrderStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregado
}

// IsClosed reports whether s is excluded from alerting (delivered or cancelled).
func (s OrderStatus) IsClosed() bool {
	return s == OrderStatusEntregado || s == OrderStatusCancelado
}

// Order is the repair order (orden de servicio) as read by the lifecycle engine.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Timestamps:
//   - ReceivedAt (fecha_recepcion) is always set.
//   - RepairedAt (fecha_reparacion) is set when the order enters REPARADO.

type Order struct {
	ID             string      `json:"id"`
	Folio          string      `json:"folio"`
	Status         OrderStatus `json:"estado"`
	ReceivedAt     time.Time   `json:"fecha_recepcion"`
	RepairedAt     *time.Time  `json:"fecha_reparacion,omitempty"`
	TechnicianID   string      `json:"tecnico_id,omitempty"`
	EquipmentBrand string      `json:"marca_equipo"`
	EquipmentModel string      `json:"modelo_equipo"`
	ClientName     string      `json:"cliente_nombre"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Validate reports records the engine cannot reason about.
func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrOrderMissingID
	}
	if !o.Status.IsValid() {
		return ErrOrderUnknownStatus
	}
	if o.ReceivedAt.IsZero() {
		return ErrOrderMissingReceivedAt
	}
	return nil
}

// CompletedAt is the instant the repair finished. Orders in LISTO_ENTREGA normally carry
// RepairedAt; the reception date is only a fallback for records that skipped REPARADO.
func (o Order) CompletedAt() time.Time {
	if o.RepairedAt != nil && !o.RepairedAt.IsZero() {
		return *o.RepairedAt
	}
	return o.ReceivedAt
}

// Equipment is the human readable "brand model" description.
func (o Order) Equipment() string {
	return strings.TrimSpace(strings.TrimSpace(o.EquipmentBrand) + " " + strings.TrimSpace(o.EquipmentModel))
}

func (o Order) HasTechnician() bool {
	return strings.TrimSpace(o.TechnicianID) != ""
}
