package response

import (
	"encoding/json"
	"slices"
	"testing"
	"time"

	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase"
)

func TestFromOrder(t *testing.T) {
	received := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:             "o-1",
		Folio:          "F-1",
		Status:         entities.OrderStatusListoEntrega,
		ReceivedAt:     received,
		EquipmentBrand: "HP",
		EquipmentModel: "EliteBook",
		ClientName:     "Ana",
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.Folio != "F-1" || res.Status != "LISTO_ENTREGA" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Equipment != "HP EliteBook" || !res.ReceivedAt.Equal(received) || res.RepairedAt != nil {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !slices.Equal(res.AllowedNext, []string{"REPARADO", "LISTO_ENTREGA", "ENTREGADO", "CANCELADO"}) {
		t.Fatalf("unexpected transitions: %v", res.AllowedNext)
	}
	if res.TerminalStatus {
		t.Fatalf("LISTO_ENTREGA is not terminal")
	}

	delivered := FromOrder(entities.Order{ID: "o-2", Status: entities.OrderStatusEntregado})
	if !delivered.TerminalStatus || !slices.Equal(delivered.AllowedNext, []string{"ENTREGADO"}) {
		t.Fatalf("unexpected delivered mapping: %+v", delivered)
	}

	unknown, _ := json.Marshal(FromOrder(entities.Order{ID: "o-3", Status: "PERDIDO"}))
	var body map[string]any
	_ = json.Unmarshal(unknown, &body)
	if _, ok := body["transiciones_permitidas"].([]any); !ok {
		t.Fatalf("expected empty list, got %s", unknown)
	}
}

func TestFromOrderSemaphores(t *testing.T) {
	if out := FromOrderSemaphores(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}

	out := FromOrderSemaphores([]usecase.OrderSemaphore{
		{Order: entities.Order{ID: "o-1", Folio: "F-1", Status: entities.OrderStatusEnReparacion}, Color: entities.SemaphoreAmarillo},
	})
	if len(out) != 1 || out[0].OrderID != "o-1" || out[0].Color != "AMARILLO" || out[0].Status != "EN_REPARACION" {
		t.Fatalf("unexpected mapping: %+v", out)
	}
}

func TestFromTransitions(t *testing.T) {
	res := FromTransitions("o-1", entities.AllowedTransitions(entities.OrderStatusCancelado))
	if res.OrderID != "o-1" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if !slices.Equal(res.Transitions, []string{"RECIBIDO", "CANCELADO"}) {
		t.Fatalf("unexpected transitions: %v", res.Transitions)
	}
}
