package entities

import "slices"

type statusSet map[OrderStatus]struct{}

func setOf(statuses ...OrderStatus) statusSet {
	s := make(statusSet, len(statuses))
	for _, st := range statuses {
		s[st] = struct{}{}
	}
	return s
}

// transitions is the closed graph of legal status changes. It is built once and never mutated.
// Self transitions are always legal and are not listed here.
var transitions = map[OrderStatus]statusSet{
	OrderStatusRecibido: setOf(
		OrderStatusEnDiagnostico,
		OrderStatusCancelado,
	),
	OrderStatusEnDiagnostico: setOf(
		OrderStatusRecibido,
		OrderStatusEsperaRefacciones,
		OrderStatusEnReparacion,
		OrderStatusCotizacionPendiente,
		OrderStatusCancelado,
	),
	OrderStatusEsperaRefacciones: setOf(
		OrderStatusEnReparacion,
		OrderStatusEnDiagnostico,
		OrderStatusCancelado,
	),
	OrderStatusCotizacionPendiente: setOf(
		OrderStatusEnReparacion,
		OrderStatusEnDiagnostico,
		OrderStatusCancelado,
	),
	OrderStatusEnReparacion: setOf(
		OrderStatusReparado,
		OrderStatusEnDiagnostico,
		OrderStatusEsperaRefacciones,
		OrderStatusCancelado,
	),
	OrderStatusReparado: setOf(
		OrderStatusListoEntrega,
		OrderStatusEnReparacion,
		OrderStatusCancelado,
	),
	OrderStatusListoEntrega: setOf(
		OrderStatusEntregado,
		OrderStatusReparado,
		OrderStatusCancelado,
	),
	OrderStatusEntregado: setOf(),
	OrderStatusCancelado: setOf(
		OrderStatusRecibido,
	),
}

// IsValidTransition reports whether an order may move from one status to another.
// An illegal pair is not an error; the caller decides how to reject it.
func IsValidTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// AllowedTransitions returns the statuses reachable from `from` in one step, including `from`
// itself, in workflow order. Unknown statuses yield nil.
func AllowedTransitions(from OrderStatus) []OrderStatus {
	if !from.IsValid() {
		return nil
	}
	out := make([]OrderStatus, 0, len(transitions[from])+1)
	for _, s := range OrderStatuses {
		if IsValidTransition(from, s) {
			out = append(out, s)
		}
	}
	return slices.Clip(out)
}
