package handlers

import (
	"context"
	"errors"
	"net/http"
	response "ordenes_taller/internal/adapter/http/dto/response"
	"ordenes_taller/internal/usecase"
	"ordenes_taller/pkg"

	"github.com/gin-gonic/gin"
)

// AlertSweepHandler triggers the alert sweep on demand. It shares the scheduler's
// non-overlap guard, so a manual run during a scheduled one is rejected.
type AlertSweepHandler struct {
	usecase usecase.IAlertSweepUseCase
}

func NewAlertSweepHandler(uc usecase.IAlertSweepUseCase) *AlertSweepHandler {
	return &AlertSweepHandler{usecase: uc}
}

// RunSweep godoc
// @Summary      Run the alert sweep now
// @Tags         alertas
// @Produce      json
// @Success      200  {object}  response.SweepResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /alertas/sweep [post]
func (h *AlertSweepHandler) RunSweep(c *gin.Context) {
	res, err := h.usecase.RunSweep(c.Request.Context())
	if err != nil {
		appErr := mapSweepError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSweepResult(res))
}

func mapSweepError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSweepInProgress):
		return pkg.NewDomainErrorSimple("SWEEP_IN_PROGRESS", "An alert sweep is already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrListActiveOrders):
		return pkg.NewDomainError("ORDERS_UNAVAILABLE", "Could not list active orders", err, http.StatusServiceUnavailable)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("SWEEP_INTERRUPTED", "Alert sweep interrupted", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
