package usecase

import (
	"context"
	"errors"
	"testing"

	"ordenes_taller/internal/domain/entities"
	mock_interfaces "ordenes_taller/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_ListUnacknowledged(t *testing.T) {
	t.Run("no recipient", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.ListUnacknowledged(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidRecipient) {
			t.Fatalf("expected ErrInvalidRecipient, got %v", err)
		}
	})

	t.Run("normalizes role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		expected := []entities.Notification{{ID: "n-1", Kind: entities.AlertKindRojo}}
		repo.EXPECT().ListUnacknowledged(gomock.Any(), "u-1", entities.RoleCoordServicio).Return(expected, nil)

		res, err := uc.ListUnacknowledged(context.Background(), " u-1 ", " coord_servicio ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "n-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestNotificationUseCase_Acknowledge(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.Acknowledge(context.Background(), "")
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().Acknowledge(gomock.Any(), "n-1").Return(entities.Notification{}, errors.New("db"))

		_, err := uc.Acknowledge(context.Background(), "n-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().Acknowledge(gomock.Any(), "n-1").Return(entities.Notification{}, nil)

		_, err := uc.Acknowledge(context.Background(), "n-1")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)
		repo.EXPECT().Acknowledge(gomock.Any(), "n-1").Return(entities.Notification{ID: "n-1", Acknowledged: true}, nil)

		res, err := uc.Acknowledge(context.Background(), " n-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Acknowledged {
			t.Fatalf("expected acknowledged notification")
		}
	})
}
