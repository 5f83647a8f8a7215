package response

import (
	"ordenes_taller/internal/domain/entities"
	"time"
)

type NotificationResponse struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"orden_id"`
	Kind           string         `json:"tipo"`
	Title          string         `json:"titulo"`
	Body           string         `json:"mensaje"`
	Priority       string         `json:"prioridad"`
	Acknowledged   bool           `json:"leida"`
	CreatedAt      time.Time      `json:"created_at"`
	AcknowledgedAt *time.Time     `json:"fecha_lectura,omitempty"`
	Details        map[string]any `json:"detalles,omitempty"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:             n.ID,
		OrderID:        n.OrderID,
		Kind:           string(n.Kind),
		Title:          n.Title,
		Body:           n.Body,
		Priority:       string(n.Priority),
		Acknowledged:   n.Acknowledged,
		CreatedAt:      n.CreatedAt,
		AcknowledgedAt: n.AcknowledgedAt,
		Details:        n.Details,
	}
}

func FromNotifications(in []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(in))
	for _, n := range in {
		out = append(out, FromNotification(n))
	}
	return out
}

type SweepResponse struct {
	AlertasRojas          int `json:"alertas_rojas"`
	AlertasAmarillas      int `json:"alertas_amarillas"`
	NotificacionesCreadas int `json:"notificaciones_creadas"`
	Errores               int `json:"errores"`
}

func FromSweepResult(r entities.SweepResult) SweepResponse {
	return SweepResponse(r)
}
