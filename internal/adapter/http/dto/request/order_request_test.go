package request

import (
	"errors"
	"testing"

	"ordenes_taller/internal/domain/entities"
)

func TestChangeStatusRequest_ResolveStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    entities.OrderStatus
		wantErr bool
	}{
		{"exact", "EN_REPARACION", entities.OrderStatusEnReparacion, false},
		{"lower case and padded", "  listo_entrega ", entities.OrderStatusListoEntrega, false},
		{"unknown", "PERDIDO", "", true},
		{"blank", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChangeStatusRequest{Status: tt.raw}.ResolveStatus()
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Fatalf("expected ErrUnknownStatus, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %s/%v, want %s", got, err, tt.want)
			}
		})
	}
}
