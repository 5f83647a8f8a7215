package repository

import (
	"context"
	"errors"
	"time"

	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultOrdersTableName = "orders"

type orderItem struct {
	ID             string `dynamodbav:"id"`
	Folio          string `dynamodbav:"folio"`
	Status         string `dynamodbav:"estado"`
	ReceivedAt     string `dynamodbav:"fecha_recepcion"`
	RepairedAt     string `dynamodbav:"fecha_reparacion,omitempty"`
	TechnicianID   string `dynamodbav:"tecnico_id,omitempty"`
	EquipmentBrand string `dynamodbav:"marca_equipo"`
	EquipmentModel string `dynamodbav:"modelo_equipo"`
	ClientName     string `dynamodbav:"cliente_nombre"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository reads repair orders from DynamoDB and persists status changes.
//
// Table requirements:
//   - PK: id (string)
//
// Orders are written by the order-editing workflow; this repository only touches
// estado, fecha_reparacion and updated_at.

type OrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb dynamoAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = DefaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListActive scans every order whose estado is neither ENTREGADO nor CANCELADO.
func (r *OrderDynamoRepository) ListActive(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("NOT (#estado IN (:entregado, :cancelado))"),
		ExpressionAttributeNames: map[string]string{
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entregado": &types.AttributeValueMemberS{Value: string(entities.OrderStatusEntregado)},
			":cancelado": &types.AttributeValueMemberS{Value: string(entities.OrderStatusCancelado)},
		},
	})

	var orders []entities.Order
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus writes to only while the stored estado still equals from. A failed condition
// on an existing item returns interfaces.ErrStatusChanged; a missing item returns a zero Order.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, repairedAt *time.Time) (entities.Order, error) {
	now := formatTime(time.Now())

	expr := "SET #estado = :estado, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":estado":     &types.AttributeValueMemberS{Value: string(to)},
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#estado":     "estado",
		"#updated_at": "updated_at",
	}
	if repairedAt != nil {
		expr += ", #fecha_reparacion = :fecha_reparacion"
		values[":fecha_reparacion"] = &types.AttributeValueMemberS{Value: formatTime(*repairedAt)}
		names["#fecha_reparacion"] = "fecha_reparacion"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:                 aws.String("attribute_exists(#id) AND #estado = :from"),
		UpdateExpression:                    aws.String(expr),
		ExpressionAttributeValues:           values,
		ExpressionAttributeNames:            mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) == 0 {
				return entities.Order{}, nil
			}
			return entities.Order{}, interfaces.ErrStatusChanged
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// fromOrderItem leaves unparseable dates zero; Order.Validate reports them downstream.
func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:             it.ID,
		Folio:          it.Folio,
		Status:         entities.OrderStatus(it.Status),
		ReceivedAt:     parseTime(it.ReceivedAt),
		RepairedAt:     parseTimePtr(it.RepairedAt),
		TechnicianID:   it.TechnicianID,
		EquipmentBrand: it.EquipmentBrand,
		EquipmentModel: it.EquipmentModel,
		ClientName:     it.ClientName,
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
