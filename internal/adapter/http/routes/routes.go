package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "ordenes_taller/docs" // generated by swag init
	"ordenes_taller/internal/adapter/http/handlers"
	"ordenes_taller/internal/adapter/persistence/repository"
	"ordenes_taller/internal/infrastructure/config"
	"ordenes_taller/internal/infrastructure/database"
	"ordenes_taller/internal/infrastructure/metrics"
	"ordenes_taller/internal/infrastructure/scheduler"
	"ordenes_taller/internal/usecase"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server and the alert sweep scheduler, and block until SIGINT/SIGTERM.
func Run() {
	cfg := config.Load()

	ddb := database.ConnectDynamoDB()
	if cfg.EnsureTables {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := database.EnsureTables(ctx, ddb,
			database.OrdersTable(cfg.OrdersTable),
			database.NotificationsTable(cfg.NotificationsTable),
		)
		cancel()
		if err != nil {
			log.Fatalf("Failed to ensure dynamodb tables: %v", err)
		}
	}

	orderRepo := repository.NewOrderDynamoRepository(ddb, cfg.OrdersTable)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.NotificationsTable)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	sweepUseCase := usecase.NewAlertSweepUseCase(orderRepo, notificationRepo)

	// Manual and scheduled sweeps go through the same guard.
	sweeper, err := scheduler.NewAlertSweepScheduler(sweepUseCase, cfg.AlertSweep.Schedule, cfg.AlertSweep.Timeout)
	if err != nil {
		log.Fatalf("Failed to configure alert sweep: %v", err)
	}
	if cfg.AlertSweep.Enabled {
		if err := sweeper.Start(); err != nil {
			log.Fatalf("Failed to start alert sweep: %v", err)
		}
	} else {
		log.Printf("[sweep][scheduler] disabled by ALERT_SWEEP_ENABLED")
	}

	router := NewRouter(
		handlers.NewOrderHandler(orderUseCase),
		handlers.NewNotificationHandler(notificationUseCase),
		handlers.NewAlertSweepHandler(sweeper),
	)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[http] listening port=%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("[http] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	sweeper.Stop(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[http] shutdown error err=%v", err)
	}
	log.Printf("[http] stopped")
}

// NewRouter mounts every public route on a fresh engine.
func NewRouter(orderHandler *handlers.OrderHandler, notificationHandler *handlers.NotificationHandler, sweepHandler *handlers.AlertSweepHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addNotificationRoutes(v1, notificationHandler)
	addAlertRoutes(v1, sweepHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(metrics.GinMiddleware())
}
