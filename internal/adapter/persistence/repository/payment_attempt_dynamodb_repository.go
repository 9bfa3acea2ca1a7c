package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "bitcoinswitch_payments"
	PaymentsDeviceIndex      = "device_id-index"

	// BatchWriteItem accepts at most 25 requests per call.
	batchWriteLimit       = 25
	batchWriteMaxAttempts = 5
)

type paymentAttemptItem struct {
	ID                string  `dynamodbav:"id"`
	DeviceID          string  `dynamodbav:"device_id"`
	Pin               int     `dynamodbav:"pin"`
	RequestedDuration string  `dynamodbav:"requested_duration"`
	AmountSats        int64   `dynamodbav:"amount_sats"`
	PaymentHash       string  `dynamodbav:"payment_hash,omitempty"`
	Status            string  `dynamodbav:"status"`
	IsTaproot         bool    `dynamodbav:"is_taproot"`
	AssetID           *string `dynamodbav:"asset_id,omitempty"`
	QuotedRate        string  `dynamodbav:"quoted_rate,omitempty"`
	QuotedAt          string  `dynamodbav:"quoted_at,omitempty"`
	QuotedAssetAmount string  `dynamodbav:"quoted_asset_amount,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)
type PaymentAttemptDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb DynamoDBAPI) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: PaymentsTableName(),
		now:       time.Now,
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(p))
	if err != nil {
		return entities.PaymentAttempt{}, err
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
		return entities.PaymentAttempt{}, err
	}
	return p, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       paymentKey(id),
		// settlement relies on reading the latest status
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

// Update replaces the stored attempt unless it is missing or already paid, in which
// case a zero PaymentAttempt is returned.
func (r *PaymentAttemptDynamoRepository) Update(ctx context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	av, err := attributevalue.MarshalMap(toPaymentAttemptItem(p))
	if err != nil {
		return entities.PaymentAttempt{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.PaymentAttemptPaid)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentAttempt{}, nil
		}
		return entities.PaymentAttempt{}, err
	}
	return p, nil
}

// MarkPaid flips the attempt to paid in a single conditional write. Of several
// concurrent callers exactly one gets the updated attempt back; the rest get a zero value.
func (r *PaymentAttemptDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	return r.update(ctx, id,
		"SET #status = :paid, #updated_at = :updated_at",
		"#status <> :paid",
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.PaymentAttemptPaid)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTimestamp(r.now())},
		},
	)
}

func (r *PaymentAttemptDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       paymentKey(id),
	})
	return err
}

// DeleteByDeviceID removes every attempt recorded for the device.
func (r *PaymentAttemptDynamoRepository) DeleteByDeviceID(ctx context.Context, deviceID string) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsDeviceIndex),
		KeyConditionExpression: aws.String("#device_id = :did"),
		ProjectionExpression:   aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#device_id": "device_id",
			"#id":        "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: deviceID},
		},
	})

	var requests []types.WriteRequest
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, item := range out.Items {
			id, ok := item["id"].(*types.AttributeValueMemberS)
			if !ok {
				continue
			}
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: paymentKey(id.Value)},
			})
		}
	}

	for start := 0; start < len(requests); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(requests))
		if err := r.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PaymentAttemptDynamoRepository) batchWrite(ctx context.Context, requests []types.WriteRequest) error {
	pending := requests
	for attempt := 0; attempt < batchWriteMaxAttempts && len(pending) > 0; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: pending},
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems[r.tableName]
	}
	if len(pending) > 0 {
		return fmt.Errorf("batch delete left %d unprocessed items", len(pending))
	}
	return nil
}

func (r *PaymentAttemptDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	condition string,
	names map[string]string,
	values map[string]types.AttributeValue,
) (entities.PaymentAttempt, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       paymentKey(id),
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condition),
		ExpressionAttributeNames:  mergeNames(map[string]string{"#id": "id"}, names),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentAttempt{}, nil
		}
		return entities.PaymentAttempt{}, err
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func paymentKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func toPaymentAttemptItem(p entities.PaymentAttempt) paymentAttemptItem {
	it := paymentAttemptItem{
		ID:                p.ID,
		DeviceID:          p.DeviceID,
		Pin:               p.Pin,
		RequestedDuration: p.RequestedDuration,
		AmountSats:        p.AmountSats,
		PaymentHash:       p.PaymentHash,
		Status:            string(p.Status),
		IsTaproot:         p.IsTaproot,
		AssetID:           p.AssetID,
		CreatedAt:         formatTimestamp(p.CreatedAt),
		UpdatedAt:         formatTimestamp(p.UpdatedAt),
	}
	if p.QuotedRate != nil {
		it.QuotedRate = floatToString(*p.QuotedRate)
	}
	if p.QuotedAt != nil {
		it.QuotedAt = formatTimestamp(*p.QuotedAt)
	}
	if p.QuotedAssetAmount != nil {
		it.QuotedAssetAmount = strconv.FormatInt(*p.QuotedAssetAmount, 10)
	}
	return it
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	p := entities.PaymentAttempt{
		ID:                it.ID,
		DeviceID:          it.DeviceID,
		Pin:               it.Pin,
		RequestedDuration: it.RequestedDuration,
		AmountSats:        it.AmountSats,
		PaymentHash:       it.PaymentHash,
		Status:            entities.PaymentAttemptStatus(it.Status),
		IsTaproot:         it.IsTaproot,
		AssetID:           it.AssetID,
		CreatedAt:         parseTimestamp(it.CreatedAt),
		UpdatedAt:         parseTimestamp(it.UpdatedAt),
	}
	if v, err := strconv.ParseFloat(it.QuotedRate, 64); err == nil {
		p.QuotedRate = &v
	}
	if it.QuotedAt != "" {
		if t := parseTimestamp(it.QuotedAt); !t.IsZero() {
			p.QuotedAt = &t
		}
	}
	if v, err := strconv.ParseInt(it.QuotedAssetAmount, 10, 64); err == nil {
		p.QuotedAssetAmount = &v
	}
	return p
}

// PaymentsTableName honours PAYMENTS_TABLE.
func PaymentsTableName() string {
	return getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName)
}
