package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestOrderDynamoRepository_ListActive(t *testing.T) {
	t.Run("pages through results", func(t *testing.T) {
		ddb := &fakeDynamo{scans: []*dynamodb.ScanOutput{
			{
				Items: []map[string]types.AttributeValue{
					mustMarshal(t, orderItem{ID: "o-1", Folio: "F-1", Status: "EN_DIAGNOSTICO", ReceivedAt: "2025-06-01T10:00:00Z"}),
				},
				LastEvaluatedKey: nextPageKey("o-1"),
			},
			{
				Items: []map[string]types.AttributeValue{
					mustMarshal(t, orderItem{ID: "o-2", Folio: "F-2", Status: "LISTO_ENTREGA", ReceivedAt: "2025-05-01T10:00:00Z", RepairedAt: "2025-05-20T10:00:00Z", TechnicianID: "tec-1"}),
				},
			},
		}}
		repo := NewOrderDynamoRepository(ddb, "")

		orders, err := repo.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[0].RepairedAt != nil || orders[0].ReceivedAt.IsZero() {
			t.Fatalf("unexpected first order: %+v", orders[0])
		}
		if orders[1].RepairedAt == nil || orders[1].TechnicianID != "tec-1" || orders[1].Status != entities.OrderStatusListoEntrega {
			t.Fatalf("unexpected second order: %+v", orders[1])
		}

		if len(ddb.scanIns) != 2 {
			t.Fatalf("expected 2 scan calls, got %d", len(ddb.scanIns))
		}
		in := ddb.scanIns[0]
		if aws.ToString(in.TableName) != DefaultOrdersTableName {
			t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
		}
		if !strings.Contains(aws.ToString(in.FilterExpression), "NOT (#estado IN (:entregado, :cancelado))") {
			t.Fatalf("unexpected filter %s", aws.ToString(in.FilterExpression))
		}
		if v := in.ExpressionAttributeValues[":cancelado"].(*types.AttributeValueMemberS).Value; v != "CANCELADO" {
			t.Fatalf("unexpected :cancelado value %s", v)
		}
	})

	t.Run("scan error", func(t *testing.T) {
		repo := NewOrderDynamoRepository(&fakeDynamo{err: errors.New("throttled")}, "orders-test")
		if _, err := repo.ListActive(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unparseable date is left zero", func(t *testing.T) {
		ddb := &fakeDynamo{scans: []*dynamodb.ScanOutput{{
			Items: []map[string]types.AttributeValue{
				mustMarshal(t, orderItem{ID: "o-1", Status: "RECIBIDO", ReceivedAt: "ayer"}),
			},
		}}}
		orders, err := NewOrderDynamoRepository(ddb, "").ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !errors.Is(orders[0].Validate(), entities.ErrOrderMissingReceivedAt) {
			t.Fatalf("expected malformed order, got %+v", orders[0])
		}
	})
}

func TestOrderDynamoRepository_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ddb := &fakeDynamo{}
		o, err := NewOrderDynamoRepository(ddb, "").GetByID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "" {
			t.Fatalf("expected empty order, got %+v", o)
		}
		if !aws.ToBool(ddb.getIn.ConsistentRead) {
			t.Fatalf("expected consistent read")
		}
	})

	t.Run("found", func(t *testing.T) {
		ddb := &fakeDynamo{getOut: &dynamodb.GetItemOutput{
			Item: mustMarshal(t, orderItem{ID: "o-1", Folio: "F-1", Status: "REPARADO", ReceivedAt: "2025-06-01T10:00:00Z", EquipmentBrand: "Lenovo", EquipmentModel: "T14"}),
		}}
		o, err := NewOrderDynamoRepository(ddb, "").GetByID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "o-1" || o.Equipment() != "Lenovo T14" || o.Status != entities.OrderStatusReparado {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderDynamoRepository_UpdateStatus(t *testing.T) {
	t.Run("sets repair date", func(t *testing.T) {
		repaired := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
		ddb := &fakeDynamo{updOut: &dynamodb.UpdateItemOutput{
			Attributes: mustMarshal(t, orderItem{ID: "o-1", Status: "REPARADO", ReceivedAt: "2025-06-01T10:00:00Z", RepairedAt: formatTime(repaired)}),
		}}
		o, err := NewOrderDynamoRepository(ddb, "").UpdateStatus(context.Background(), "o-1", entities.OrderStatusEnReparacion, entities.OrderStatusReparado, &repaired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.RepairedAt == nil || !o.RepairedAt.Equal(repaired) {
			t.Fatalf("unexpected repair date: %v", o.RepairedAt)
		}
		if !strings.Contains(aws.ToString(ddb.updateIn.UpdateExpression), "#fecha_reparacion = :fecha_reparacion") {
			t.Fatalf("unexpected update expression %s", aws.ToString(ddb.updateIn.UpdateExpression))
		}
		if ddb.updateIn.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("expected #id name for condition")
		}
	})

	t.Run("without repair date", func(t *testing.T) {
		ddb := &fakeDynamo{updOut: &dynamodb.UpdateItemOutput{
			Attributes: mustMarshal(t, orderItem{ID: "o-1", Status: "EN_DIAGNOSTICO"}),
		}}
		if _, err := NewOrderDynamoRepository(ddb, "").UpdateStatus(context.Background(), "o-1", entities.OrderStatusRecibido, entities.OrderStatusEnDiagnostico, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(aws.ToString(ddb.updateIn.UpdateExpression), "fecha_reparacion") {
			t.Fatalf("unexpected update expression %s", aws.ToString(ddb.updateIn.UpdateExpression))
		}
	})

	t.Run("write is conditioned on the validated status", func(t *testing.T) {
		ddb := &fakeDynamo{updOut: &dynamodb.UpdateItemOutput{
			Attributes: mustMarshal(t, orderItem{ID: "o-1", Status: "CANCELADO"}),
		}}
		if _, err := NewOrderDynamoRepository(ddb, "").UpdateStatus(context.Background(), "o-1", entities.OrderStatusListoEntrega, entities.OrderStatusCancelado, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cond := aws.ToString(ddb.updateIn.ConditionExpression); cond != "attribute_exists(#id) AND #estado = :from" {
			t.Fatalf("unexpected condition %q", cond)
		}
		from, ok := ddb.updateIn.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS)
		if !ok || from.Value != "LISTO_ENTREGA" {
			t.Fatalf("expected :from=LISTO_ENTREGA, got %#v", ddb.updateIn.ExpressionAttributeValues[":from"])
		}
		to, ok := ddb.updateIn.ExpressionAttributeValues[":estado"].(*types.AttributeValueMemberS)
		if !ok || to.Value != "CANCELADO" {
			t.Fatalf("expected :estado=CANCELADO, got %#v", ddb.updateIn.ExpressionAttributeValues[":estado"])
		}
		if ddb.updateIn.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
			t.Fatalf("expected ALL_OLD on condition failure, got %q", ddb.updateIn.ReturnValuesOnConditionCheckFailure)
		}
	})

	t.Run("status changed since it was read", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{
			Item: mustMarshal(t, orderItem{ID: "o-1", Status: "ENTREGADO"}),
		}}
		o, err := NewOrderDynamoRepository(ddb, "").UpdateStatus(context.Background(), "o-1", entities.OrderStatusListoEntrega, entities.OrderStatusCancelado, nil)
		if !errors.Is(err, interfaces.ErrStatusChanged) {
			t.Fatalf("expected ErrStatusChanged, got %v", err)
		}
		if o.ID != "" {
			t.Fatalf("expected empty order, got %+v", o)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		ddb := &fakeDynamo{err: &types.ConditionalCheckFailedException{}}
		o, err := NewOrderDynamoRepository(ddb, "").UpdateStatus(context.Background(), "o-1", entities.OrderStatusRecibido, entities.OrderStatusEnDiagnostico, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "" {
			t.Fatalf("expected empty order, got %+v", o)
		}
	})
}
