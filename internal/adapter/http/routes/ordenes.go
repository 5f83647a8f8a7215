package routes

import (
	"ordenes_taller/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/ordenes"
	PathNotifications = "/notificaciones"
	PathAlerts        = "/alertas"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		// Tablero de semáforos
		orders.GET("/semaforo", h.ListSemaphores)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/semaforo", h.GetSemaphore)
		orders.GET("/:id/transiciones", h.GetTransitions)
		orders.PATCH("/:id/estado", h.ChangeStatus)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.ListUnacknowledged)
		notifications.PATCH("/:id/leida", h.Acknowledge)
	}
}

func addAlertRoutes(rg *gin.RouterGroup, h *handlers.AlertSweepHandler) {
	alerts := rg.Group(PathAlerts)
	{
		alerts.POST("/sweep", h.RunSweep)
	}
}
