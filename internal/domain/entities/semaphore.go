package entities

import "time"

// SemaphoreColor is the "semáforo" health indicator of an order. It is derived from the order
// state and elapsed time on demand and never persisted.

type SemaphoreColor string

const (
	SemaphoreRojo     SemaphoreColor = "ROJO"
	SemaphoreNaranja  SemaphoreColor = "NARANJA"
	SemaphoreAmarillo SemaphoreColor = "AMARILLO"
	SemaphoreAzul     SemaphoreColor = "AZUL"
	SemaphoreVerde    SemaphoreColor = "VERDE"
)

const (
	// PickupDeadline is how long a finished order may wait in LISTO_ENTREGA.
	PickupDeadline = 5 * 24 * time.Hour
	// ProgressDeadline is how long an order may sit in diagnosis or quotation.
	ProgressDeadline = 72 * time.Hour
	// SameDayWindow marks freshly received orders.
	SameDayWindow = 24 * time.Hour
)

// ClassifySemaphore computes the color of an order at instant now. The first matching rule wins:
//
//	ROJO      LISTO_ENTREGA and more than PickupDeadline since completion
//	NARANJA   ESPERA_REFACCIONES
//	AMARILLO  EN_DIAGNOSTICO or COTIZACION_PENDIENTE and more than ProgressDeadline since reception
//	AZUL      RECIBIDO and less than SameDayWindow since reception
//	VERDE     anything else
//
// Thresholds are strict: an order exactly at a deadline has not breached it.
// Closed orders (ENTREGADO, CANCELADO) are outside the intended domain and classify VERDE.
func ClassifySemaphore(order Order, now time.Time) SemaphoreColor {
	sinceReception := now.Sub(order.ReceivedAt)

	switch {
	case order.Status == OrderStatusListoEntrega && now.Sub(order.CompletedAt()) > PickupDeadline:
		return SemaphoreRojo
	case order.Status == OrderStatusEsperaRefacciones:
		return SemaphoreNaranja
	case (order.Status == OrderStatusEnDiagnostico || order.Status == OrderStatusCotizacionPendiente) &&
		sinceReception > ProgressDeadline:
		return SemaphoreAmarillo
	case order.Status == OrderStatusRecibido && sinceReception < SameDayWindow:
		return SemaphoreAzul
	default:
		return SemaphoreVerde
	}
}
