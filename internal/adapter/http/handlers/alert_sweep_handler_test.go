package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordenes_taller/internal/adapter/http/handlers/mocks"
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAlertSweepHandler_RunSweep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		res    entities.SweepResult
		err    error
		status int
	}{
		{"success", entities.SweepResult{AlertasRojas: 1, NotificacionesCreadas: 1}, nil, http.StatusOK},
		{"busy", entities.SweepResult{}, usecase.ErrSweepInProgress, http.StatusConflict},
		{"listing failed", entities.SweepResult{}, fmt.Errorf("%w: %w", usecase.ErrListActiveOrders, errors.New("throttled")), http.StatusServiceUnavailable},
		{"cancelled", entities.SweepResult{AlertasRojas: 1}, context.Canceled, http.StatusServiceUnavailable},
		{"unexpected", entities.SweepResult{}, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIAlertSweepUseCase(ctrl)
			h := NewAlertSweepHandler(uc)

			r := gin.New()
			r.POST("/v1/alertas/sweep", h.RunSweep)

			uc.EXPECT().RunSweep(gomock.Any()).Return(tt.res, tt.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/alertas/sweep", nil))
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}
