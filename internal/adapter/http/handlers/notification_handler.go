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

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListUnacknowledged godoc
// @Summary      Unread notifications for a user and/or role
// @Tags         notificaciones
// @Produce      json
// @Param        usuario_id  query     string  false  "User ID"
// @Param        rol         query     string  false  "Role (SUPER_ADMIN, COORD_SERVICIO, ...)"
// @Success      200         {array}   response.NotificationResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /notificaciones [get]
func (h *NotificationHandler) ListUnacknowledged(c *gin.Context) {
	var q request.NotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	list, err := h.usecase.ListUnacknowledged(c.Request.Context(), q.UserID, q.ResolveRole())
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(list))
}

// Acknowledge godoc
// @Summary      Mark a notification as read
// @Description  Reading an alert re-arms the sweep for that order and alert kind.
// @Tags         notificaciones
// @Produce      json
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.NotificationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /notificaciones/{id}/leida [patch]
func (h *NotificationHandler) Acknowledge(c *gin.Context) {
	n, err := h.usecase.Acknowledge(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecipient), errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
