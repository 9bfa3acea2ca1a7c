package repository

import (
	"context"
	"errors"
	"strconv"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDevicesTableName = "bitcoinswitch_devices"
	DevicesWalletIndex      = "wallet-index"
)

type switchItem struct {
	Pin              int      `dynamodbav:"pin"`
	Amount           string   `dynamodbav:"amount"`
	Duration         int64    `dynamodbav:"duration"`
	Variable         bool     `dynamodbav:"variable"`
	Comment          bool     `dynamodbav:"comment"`
	Label            string   `dynamodbav:"label,omitempty"`
	LNURL            string   `dynamodbav:"lnurl,omitempty"`
	AcceptsAssets    bool     `dynamodbav:"accepts_assets"`
	AcceptedAssetIDs []string `dynamodbav:"accepted_asset_ids,omitempty"`
}

type deviceItem struct {
	ID         string       `dynamodbav:"id"`
	Title      string       `dynamodbav:"title"`
	Wallet     string       `dynamodbav:"wallet"`
	WalletKey  string       `dynamodbav:"wallet_key"`
	Currency   string       `dynamodbav:"currency"`
	Switches   []switchItem `dynamodbav:"switches"`
	Password   *string      `dynamodbav:"password,omitempty"`
	Disabled   bool         `dynamodbav:"disabled"`
	Disposable bool         `dynamodbav:"disposable"`
	CreatedAt  string       `dynamodbav:"created_at"`
	UpdatedAt  string       `dynamodbav:"updated_at"`
}

// DeviceDynamoRepository persists Device entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: wallet-index (PK: wallet)
//
// Switches are embedded in the device item so a registry lookup is a single read.
type DeviceDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IDeviceRepository = (*DeviceDynamoRepository)(nil)

func NewDeviceDynamoRepository(ddb DynamoDBAPI) *DeviceDynamoRepository {
	return &DeviceDynamoRepository{
		ddb:       ddb,
		tableName: DevicesTableName(),
	}
}

func (r *DeviceDynamoRepository) Create(ctx context.Context, d entities.Device) (entities.Device, error) {
	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
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
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Device, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Device{}, err
	}
	if len(out.Item) == 0 {
		return entities.Device{}, nil
	}

	var it deviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Device{}, err
	}
	return fromDeviceItem(it), nil
}

func (r *DeviceDynamoRepository) ListByWallet(ctx context.Context, wallet string) ([]entities.Device, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(DevicesWalletIndex),
		KeyConditionExpression: aws.String("#wallet = :wallet"),
		ExpressionAttributeNames: map[string]string{
			"#wallet": "wallet",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wallet": &types.AttributeValueMemberS{Value: wallet},
		},
	})

	devices := make([]entities.Device, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it deviceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			devices = append(devices, fromDeviceItem(it))
		}
	}
	return devices, nil
}

// Update replaces the stored device. It returns a zero Device when the device no longer exists.
func (r *DeviceDynamoRepository) Update(ctx context.Context, d entities.Device) (entities.Device, error) {
	av, err := attributevalue.MarshalMap(toDeviceItem(d))
	if err != nil {
		return entities.Device{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Device{}, nil
		}
		return entities.Device{}, err
	}
	return d, nil
}

func (r *DeviceDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toDeviceItem(d entities.Device) deviceItem {
	switches := make([]switchItem, 0, len(d.Switches))
	for _, s := range d.Switches {
		switches = append(switches, switchItem{
			Pin:              s.Pin,
			Amount:           floatToString(s.Amount),
			Duration:         s.Duration,
			Variable:         s.Variable,
			Comment:          s.Comment,
			Label:            s.Label,
			LNURL:            s.LNURL,
			AcceptsAssets:    s.AcceptsAssets,
			AcceptedAssetIDs: s.AcceptedAssetIDs,
		})
	}
	return deviceItem{
		ID:         d.ID,
		Title:      d.Title,
		Wallet:     d.Wallet,
		WalletKey:  d.WalletKey,
		Currency:   d.Currency,
		Switches:   switches,
		Password:   d.Password,
		Disabled:   d.Disabled,
		Disposable: d.Disposable,
		CreatedAt:  formatTimestamp(d.CreatedAt),
		UpdatedAt:  formatTimestamp(d.UpdatedAt),
	}
}

func fromDeviceItem(it deviceItem) entities.Device {
	switches := make([]entities.Switch, 0, len(it.Switches))
	for _, s := range it.Switches {
		amount, _ := strconv.ParseFloat(s.Amount, 64)
		switches = append(switches, entities.Switch{
			Pin:              s.Pin,
			Amount:           amount,
			Duration:         s.Duration,
			Variable:         s.Variable,
			Comment:          s.Comment,
			Label:            s.Label,
			LNURL:            s.LNURL,
			AcceptsAssets:    s.AcceptsAssets,
			AcceptedAssetIDs: s.AcceptedAssetIDs,
		})
	}
	return entities.Device{
		ID:         it.ID,
		Title:      it.Title,
		Wallet:     it.Wallet,
		WalletKey:  it.WalletKey,
		Currency:   it.Currency,
		Switches:   switches,
		Password:   it.Password,
		Disabled:   it.Disabled,
		Disposable: it.Disposable,
		CreatedAt:  parseTimestamp(it.CreatedAt),
		UpdatedAt:  parseTimestamp(it.UpdatedAt),
	}
}

// DevicesTableName honours DEVICES_TABLE.
func DevicesTableName() string {
	return getenvDefault("DEVICES_TABLE", defaultDevicesTableName)
}
