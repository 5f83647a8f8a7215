package entities

import "time"

// AlertKind is the subset of semaphore colors wired to notifications.

type AlertKind string

const (
	AlertKindRojo     AlertKind = "ROJO"
	AlertKindAmarillo AlertKind = "AMARILLO"
)

// AlertKindFor maps a semaphore color to the alert it raises, if any.
func AlertKindFor(color SemaphoreColor) (AlertKind, bool) {
	switch color {
	case SemaphoreRojo:
		return AlertKindRojo, true
	case SemaphoreAmarillo:
		return AlertKindAmarillo, true
	}
	return "", false
}

type Role string

const (
	RoleSuperAdmin    Role = "SUPER_ADMIN"
	RoleCoordServicio Role = "COORD_SERVICIO"
	RoleTecnico       Role = "TECNICO"
	RoleRecepcion     Role = "RECEPCION"
)

// AlertRecipientRoles receive every semaphore alert.
var AlertRecipientRoles = []Role{RoleCoordServicio, RoleSuperAdmin}

type Priority string

const (
	PriorityAlta   Priority = "ALTA"
	PriorityNormal Priority = "NORMAL"
)

// AlertDetails is the typed payload attached to an alert notification.
// Implementations: RedAlertDetails, YellowAlertDetails.
type AlertDetails interface {
	Kind() AlertKind
	Fields() map[string]any
}

// RedAlertDetails describes equipment waiting to be picked up.
type RedAlertDetails struct {
	Folio             string
	Equipment         string
	ClientName        string
	DaysWithoutPickup int
}

func (RedAlertDetails) Kind() AlertKind { return AlertKindRojo }

func (d RedAlertDetails) Fields() map[string]any {
	return map[string]any{
		"folio":            d.Folio,
		"equipo":           d.Equipment,
		"cliente":          d.ClientName,
		"dias_sin_recoger": d.DaysWithoutPickup,
	}
}

// YellowAlertDetails describes a diagnosis or quotation that stopped moving.
type YellowAlertDetails struct {
	Folio                string
	Equipment            string
	ClientName           string
	Status               OrderStatus
	HoursWithoutProgress int
}

func (YellowAlertDetails) Kind() AlertKind { return AlertKindAmarillo }

func (d YellowAlertDetails) Fields() map[string]any {
	return map[string]any{
		"folio":            d.Folio,
		"equipo":           d.Equipment,
		"cliente":          d.ClientName,
		"estado":           string(d.Status),
		"horas_sin_avance": d.HoursWithoutProgress,
	}
}

// NewNotification is the write payload handed to the notification gateway.
type NewNotification struct {
	OrderID  string
	Kind     AlertKind
	Title    string
	Body     string
	Priority Priority
	Details  AlertDetails
}

// Notification is a persisted notification (the bell entries).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (orden_id-index): orden_id
//
// A record is addressed either to Roles or to a single UserID.

type Notification struct {
	ID             string         `json:"id"`
	OrderID        string         `json:"orden_id"`
	Kind           AlertKind      `json:"tipo"`
	Title          string         `json:"titulo"`
	Body           string         `json:"mensaje"`
	Priority       Priority       `json:"prioridad"`
	Roles          []Role         `json:"roles,omitempty"`
	UserID         string         `json:"usuario_id,omitempty"`
	Acknowledged   bool           `json:"leida"`
	CreatedAt      time.Time      `json:"created_at"`
	AcknowledgedAt *time.Time     `json:"fecha_lectura,omitempty"`
	Details        map[string]any `json:"detalles,omitempty"`
}

// SweepResult aggregates the outcome of one alert sweep.
type SweepResult struct {
	AlertasRojas          int `json:"alertas_rojas"`
	AlertasAmarillas      int `json:"alertas_amarillas"`
	NotificacionesCreadas int `json:"notificaciones_creadas"`
	Errores               int `json:"errores"`
}
