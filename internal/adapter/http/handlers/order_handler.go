package handlers

import (
	"errors"
	"net/http"
	request "ordenes_taller/internal/adapter/http/dto/request"
	response "ordenes_taller/internal/adapter/http/dto/response"
	"ordenes_taller/internal/usecase"
	"ordenes_taller/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// OrderHandler exposes the order lifecycle: validated status changes and live semáforo colors.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         ordenes
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /ordenes/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// ChangeStatus godoc
// @Summary      Change an order status
// @Description  Moves the order along the workflow graph. Illegal moves are rejected with 422; a concurrent status change with 409.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Order ID"
// @Param        request  body      request.ChangeStatusRequest  true  "Target status"
// @Success      200      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /ordenes/{id}/estado [patch]
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	to, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), to)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// GetTransitions godoc
// @Summary      Legal next statuses of an order
// @Tags         ordenes
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.TransitionsResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /ordenes/{id}/transiciones [get]
func (h *OrderHandler) GetTransitions(c *gin.Context) {
	id := c.Param("id")
	allowed, err := h.usecase.AllowedTransitions(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransitions(id, allowed))
}

// GetSemaphore godoc
// @Summary      Live semáforo color of an order
// @Tags         ordenes
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.SemaphoreResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /ordenes/{id}/semaforo [get]
func (h *OrderHandler) GetSemaphore(c *gin.Context) {
	s, err := h.usecase.Semaphore(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSemaphore(s))
}

// ListSemaphores godoc
// @Summary      Live semáforo colors of every active order
// @Tags         ordenes
// @Produce      json
// @Success      200  {array}  response.SemaphoreResponse
// @Router       /ordenes/semaforo [get]
func (h *OrderHandler) ListSemaphores(c *gin.Context) {
	list, err := h.usecase.ListActiveSemaphores(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderSemaphores(list))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainErrorSimple("ORDER_CLOSED", "Order is delivered or cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Order status changed, reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
