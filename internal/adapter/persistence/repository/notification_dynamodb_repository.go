package repository

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"ordenes_taller/internal/domain/entities"
	"ordenes_taller/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultNotificationsTableName = "notifications"
	NotificationsOrderIDIndex     = "orden_id-index"
)

type notificationItem struct {
	ID             string         `dynamodbav:"id"`
	OrderID        string         `dynamodbav:"orden_id"`
	Kind           string         `dynamodbav:"tipo"`
	Title          string         `dynamodbav:"titulo"`
	Body           string         `dynamodbav:"mensaje"`
	Priority       string         `dynamodbav:"prioridad"`
	Roles          []string       `dynamodbav:"roles,stringset,omitempty"`
	UserID         string         `dynamodbav:"usuario_id,omitempty"`
	Acknowledged   bool           `dynamodbav:"leida"`
	CreatedAt      string         `dynamodbav:"created_at"`
	AcknowledgedAt string         `dynamodbav:"fecha_lectura,omitempty"`
	Details        map[string]any `dynamodbav:"detalles,omitempty"`
}

// NotificationDynamoRepository is the notification store: the alert sweep writes through it
// (INotificationGateway) and the bell reads and acknowledges through it (INotificationRepository).
//
// Table requirements:
//   - PK: id (string)
//   - GSI: orden_id-index (PK: orden_id)
//
// One record is written per recipient group: a role set, or a single user.

type NotificationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
	newID     func() string
}

var (
	_ interfaces.INotificationGateway    = (*NotificationDynamoRepository)(nil)
	_ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)
)

func NewNotificationDynamoRepository(ddb dynamoAPI, tableName string) *NotificationDynamoRepository {
	if tableName == "" {
		tableName = DefaultNotificationsTableName
	}
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now, newID: uuid.NewString}
}

// HasUnacknowledged queries the order index for an unread record of the given kind.
// The index read is eventually consistent; a duplicate after a very recent write is tolerated.
func (r *NotificationDynamoRepository) HasUnacknowledged(ctx context.Context, orderID string, kind entities.AlertKind) (bool, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(NotificationsOrderIDIndex),
		KeyConditionExpression: aws.String("#orden_id = :oid"),
		FilterExpression:       aws.String("#tipo = :tipo AND #leida = :false"),
		ExpressionAttributeNames: map[string]string{
			"#orden_id": "orden_id",
			"#tipo":     "tipo",
			"#leida":    "leida",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid":   &types.AttributeValueMemberS{Value: orderID},
			":tipo":  &types.AttributeValueMemberS{Value: string(kind)},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		Select: types.SelectCount,
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return false, err
		}
		if page.Count > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (r *NotificationDynamoRepository) CreateForRoles(ctx context.Context, roles []entities.Role, n entities.NewNotification) error {
	if len(roles) == 0 {
		return errors.New("notification without recipient roles")
	}
	rs := make([]string, 0, len(roles))
	for _, role := range roles {
		rs = append(rs, string(role))
	}
	return r.put(ctx, n, func(it *notificationItem) { it.Roles = rs })
}

func (r *NotificationDynamoRepository) CreateForUser(ctx context.Context, userID string, n entities.NewNotification) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("notification without recipient user")
	}
	return r.put(ctx, n, func(it *notificationItem) { it.UserID = userID })
}

func (r *NotificationDynamoRepository) put(ctx context.Context, n entities.NewNotification, addressee func(*notificationItem)) error {
	it := notificationItem{
		ID:        r.newID(),
		OrderID:   n.OrderID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		Priority:  string(n.Priority),
		CreatedAt: formatTime(r.now()),
	}
	if n.Details != nil {
		it.Details = n.Details.Fields()
	}
	addressee(&it)

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		log.Printf("[notification][repository] put failed order_id=%s tipo=%s err=%v", n.OrderID, n.Kind, err)
		return err
	}
	return nil
}

// ListUnacknowledged returns unread records addressed to userID or to role, newest first.
func (r *NotificationDynamoRepository) ListUnacknowledged(ctx context.Context, userID string, role entities.Role) ([]entities.Notification, error) {
	names := map[string]string{"#leida": "leida"}
	values := map[string]types.AttributeValue{
		":false": &types.AttributeValueMemberBOOL{Value: false},
	}

	var recipient []string
	if userID != "" {
		recipient = append(recipient, "#usuario_id = :uid")
		names["#usuario_id"] = "usuario_id"
		values[":uid"] = &types.AttributeValueMemberS{Value: userID}
	}
	if role != "" {
		recipient = append(recipient, "contains(#roles, :role)")
		names["#roles"] = "roles"
		values[":role"] = &types.AttributeValueMemberS{Value: string(role)}
	}
	filter := "#leida = :false"
	if len(recipient) > 0 {
		filter += " AND (" + strings.Join(recipient, " OR ") + ")"
	}

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})

	out := []entities.Notification{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromNotificationItem(it))
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NotificationDynamoRepository) Acknowledge(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #leida = :true, #fecha_lectura = :fecha_lectura"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#leida":         "leida",
			"#fecha_lectura": "fecha_lectura",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":          &types.AttributeValueMemberBOOL{Value: true},
			":fecha_lectura": &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func fromNotificationItem(it notificationItem) entities.Notification {
	roles := make([]entities.Role, 0, len(it.Roles))
	for _, r := range it.Roles {
		roles = append(roles, entities.Role(r))
	}
	return entities.Notification{
		ID:             it.ID,
		OrderID:        it.OrderID,
		Kind:           entities.AlertKind(it.Kind),
		Title:          it.Title,
		Body:           it.Body,
		Priority:       entities.Priority(it.Priority),
		Roles:          roles,
		UserID:         it.UserID,
		Acknowledged:   it.Acknowledged,
		CreatedAt:      parseTime(it.CreatedAt),
		AcknowledgedAt: parseTimePtr(it.AcknowledgedAt),
		Details:        it.Details,
	}
}
