package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"
	"time"
)

var (
	ErrSweepInProgress  = errors.New("alert sweep already running")
	ErrListActiveOrders = errors.New("failed listing active orders")
)

// IAlertSweepUseCase runs one pass of the semáforo alert sweep.
//
// Each run is stateless: it lists the active orders, classifies them and, for ROJO and
// AMARILLO, creates notifications unless an unread one already exists for (order, kind).
// Per-order failures are counted in SweepResult.Errores and never abort the run.
type IAlertSweepUseCase interface {
	RunSweep(ctx context.Context) (entities.SweepResult, error)
}

type AlertSweepUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.INotificationGateway
	now     func() time.Time
}

var _ IAlertSweepUseCase = (*AlertSweepUseCase)(nil)

func NewAlertSweepUseCase(orders interfaces.IOrderRepository, gateway interfaces.INotificationGateway) *AlertSweepUseCase {
	return &AlertSweepUseCase{orders: orders, gateway: gateway, now: time.Now}
}

// RunSweep evaluates every active order once. It only fails as a whole when the order
// listing fails, or when ctx is cancelled mid-run, in which case the partial counts are
// returned alongside ctx.Err().
func (u *AlertSweepUseCase) RunSweep(ctx context.Context) (entities.SweepResult, error) {
	var res entities.SweepResult

	orders, err := u.orders.ListActive(ctx)
	if err != nil {
		log.Printf("[sweep][usecase] list active orders failed err=%v", err)
		return res, fmt.Errorf("%w: %w", ErrListActiveOrders, err)
	}

	now := u.now().UTC()
	log.Printf("[sweep][usecase] start orders=%d now=%s", len(orders), now.Format(time.RFC3339))

	for _, o := range orders {
		if err := ctx.Err(); err != nil {
			log.Printf("[sweep][usecase] cancelled rojas=%d amarillas=%d creadas=%d errores=%d err=%v",
				res.AlertasRojas, res.AlertasAmarillas, res.NotificacionesCreadas, res.Errores, err)
			return res, err
		}

		if err := u.evaluate(ctx, o, now, &res); err != nil {
			res.Errores++
			log.Printf("[sweep][usecase] order failed order_id=%s folio=%s estado=%s err=%v", o.ID, o.Folio, o.Status, err)
		}
	}

	log.Printf("[sweep][usecase] done rojas=%d amarillas=%d creadas=%d errores=%d",
		res.AlertasRojas, res.AlertasAmarillas, res.NotificacionesCreadas, res.Errores)
	return res, nil
}

// evaluate processes one order in isolation; a panic is turned into an error so a single
// bad record cannot take the sweep down.
func (u *AlertSweepUseCase) evaluate(ctx context.Context, o entities.Order, now time.Time, res *entities.SweepResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic evaluating order: %v", r)
		}
	}()

	if err := o.Validate(); err != nil {
		return err
	}
	// ListActive should never return these; skip them rather than alerting on closed orders.
	if o.Status.IsClosed() {
		return nil
	}

	switch entities.ClassifySemaphore(o, now) {
	case entities.SemaphoreRojo:
		return u.redAlert(ctx, o, now, res)
	case entities.SemaphoreAmarillo:
		return u.yellowAlert(ctx, o, now, res)
	}
	return nil
}

// redAlert notifies coordinators about finished equipment nobody has picked up.
func (u *AlertSweepUseCase) redAlert(ctx context.Context, o entities.Order, now time.Time, res *entities.SweepResult) error {
	alerted, err := u.gateway.HasUnacknowledged(ctx, o.ID, entities.AlertKindRojo)
	if err != nil {
		return fmt.Errorf("dedup check ROJO: %w", err)
	}
	if alerted {
		return nil
	}

	details := entities.RedAlertDetails{
		Folio:             o.Folio,
		Equipment:         o.Equipment(),
		ClientName:        o.ClientName,
		DaysWithoutPickup: int(now.Sub(o.CompletedAt()) / (24 * time.Hour)),
	}
	n := entities.NewNotification{
		OrderID:  o.ID,
		Kind:     entities.AlertKindRojo,
		Title:    fmt.Sprintf("Equipo sin recoger: orden %s", o.Folio),
		Body:     fmt.Sprintf("La orden %s (%s) del cliente %s lleva %d días lista para entrega sin ser recogida.", o.Folio, details.Equipment, o.ClientName, details.DaysWithoutPickup),
		Priority: entities.PriorityAlta,
		Details:  details,
	}
	if err := u.gateway.CreateForRoles(ctx, entities.AlertRecipientRoles, n); err != nil {
		return fmt.Errorf("create ROJO notification: %w", err)
	}

	res.AlertasRojas++
	res.NotificacionesCreadas++
	log.Printf("[sweep][usecase] ROJO created order_id=%s folio=%s dias=%d", o.ID, o.Folio, details.DaysWithoutPickup)
	return nil
}

// yellowAlert notifies coordinators, and the assigned technician if any, about a stalled
// diagnosis or quotation.
func (u *AlertSweepUseCase) yellowAlert(ctx context.Context, o entities.Order, now time.Time, res *entities.SweepResult) error {
	alerted, err := u.gateway.HasUnacknowledged(ctx, o.ID, entities.AlertKindAmarillo)
	if err != nil {
		return fmt.Errorf("dedup check AMARILLO: %w", err)
	}
	if alerted {
		return nil
	}

	details := entities.YellowAlertDetails{
		Folio:                o.Folio,
		Equipment:            o.Equipment(),
		ClientName:           o.ClientName,
		Status:               o.Status,
		HoursWithoutProgress: int(now.Sub(o.ReceivedAt) / time.Hour),
	}
	n := entities.NewNotification{
		OrderID:  o.ID,
		Kind:     entities.AlertKindAmarillo,
		Title:    fmt.Sprintf("Orden sin avance: %s", o.Folio),
		Body:     fmt.Sprintf("La orden %s (%s) del cliente %s lleva %d horas en %s sin avance.", o.Folio, details.Equipment, o.ClientName, details.HoursWithoutProgress, o.Status),
		Priority: entities.PriorityNormal,
		Details:  details,
	}
	if err := u.gateway.CreateForRoles(ctx, entities.AlertRecipientRoles, n); err != nil {
		return fmt.Errorf("create AMARILLO notification: %w", err)
	}
	res.NotificacionesCreadas++

	// Dedup is per (order, kind), so once the role record exists a failed technician write
	// is not retried until that record is acknowledged.
	if o.HasTechnician() {
		tn := n
		tn.Title = fmt.Sprintf("Tu orden %s no avanza", o.Folio)
		tn.Body = fmt.Sprintf("La orden %s lleva %d horas en %s. Revisa su diagnóstico o cotización.", o.Folio, details.HoursWithoutProgress, o.Status)
		if err := u.gateway.CreateForUser(ctx, o.TechnicianID, tn); err != nil {
			return fmt.Errorf("create AMARILLO technician notification: %w", err)
		}
		res.NotificacionesCreadas++
	}

	res.AlertasAmarillas++
	log.Printf("[sweep][usecase] AMARILLO created order_id=%s folio=%s horas=%d tecnico=%s", o.ID, o.Folio, details.HoursWithoutProgress, o.TechnicianID)
	return nil
}
