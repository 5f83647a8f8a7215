package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordenes_taller/internal/adapter/http/handlers/mocks"
	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListUnacknowledged(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notificaciones", h.ListUnacknowledged)

		uc.EXPECT().ListUnacknowledged(gomock.Any(), "", entities.Role("")).Return(nil, usecase.ErrInvalidRecipient)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notificaciones", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notificaciones", h.ListUnacknowledged)

		uc.EXPECT().ListUnacknowledged(gomock.Any(), "tec-1", entities.RoleTecnico).Return([]entities.Notification{
			{ID: "n-1", OrderID: "o-1", Kind: entities.AlertKindAmarillo, Priority: entities.PriorityNormal, CreatedAt: time.Now().UTC()},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notificaciones?usuario_id=tec-1&rol=TECNICO", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["tipo"] != "AMARILLO" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_Acknowledge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notificaciones/:id/leida", h.Acknowledge)

		uc.EXPECT().Acknowledge(gomock.Any(), "n-9").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/notificaciones/n-9/leida", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notificaciones/:id/leida", h.Acknowledge)

		now := time.Now().UTC()
		uc.EXPECT().Acknowledge(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Acknowledged: true, AcknowledgedAt: &now}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/notificaciones/n-1/leida", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["leida"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
