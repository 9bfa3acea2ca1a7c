package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table understanding the handful of condition
// expressions the repositories issue.
type fakeDynamo struct {
	mu          sync.Mutex
	items       map[string]map[string]types.AttributeValue
	batchCalls  int
	unprocessed int
	putErr      error
}

var _ DynamoDBAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func (f *fakeDynamo) checkCondition(expr *string, existing map[string]types.AttributeValue) error {
	if expr == nil {
		return nil
	}
	c := *expr
	if strings.Contains(c, "attribute_not_exists(#id)") && existing != nil {
		return conditionFailed()
	}
	if strings.Contains(c, "attribute_exists(#id)") && existing == nil {
		return conditionFailed()
	}
	if strings.Contains(c, "#status <> :paid") && stringAttr(existing, "status") == "paid" {
		return conditionFailed()
	}
	return nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := keyOf(in.Item)
	if err := f.checkCondition(in.ConditionExpression, f.items[id]); err != nil {
		return nil, err
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key)]}, nil
}

// UpdateItem only supports "SET a = :x, b = :y" expressions.
func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := keyOf(in.Key)
	existing := f.items[id]
	if err := f.checkCondition(in.ConditionExpression, existing); err != nil {
		return nil, err
	}
	updated := make(map[string]types.AttributeValue, len(existing))
	for k, v := range existing {
		updated[k] = v
	}
	assignments := strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ",")
	for _, a := range assignments {
		parts := strings.SplitN(a, "=", 2)
		name := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
		updated[name] = in.ExpressionAttributeValues[strings.TrimSpace(parts[1])]
	}
	f.items[id] = updated
	return &dynamodb.UpdateItemOutput{Attributes: updated}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, keyOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query matches the single "#attr = :value" key condition used on the GSIs.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parts := strings.SplitN(aws.ToString(in.KeyConditionExpression), "=", 2)
	attr := in.ExpressionAttributeNames[strings.TrimSpace(parts[0])]
	want := in.ExpressionAttributeValues[strings.TrimSpace(parts[1])].(*types.AttributeValueMemberS).Value

	out := &dynamodb.QueryOutput{}
	for _, item := range f.items {
		if stringAttr(item, attr) == want {
			out.Items = append(out.Items, item)
		}
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

// BatchWriteItem leaves the first f.unprocessed requests of the first call unprocessed.
func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batchCalls++
	out := &dynamodb.BatchWriteItemOutput{UnprocessedItems: map[string][]types.WriteRequest{}}
	for table, reqs := range in.RequestItems {
		for i, req := range reqs {
			if f.unprocessed > 0 && i < f.unprocessed {
				out.UnprocessedItems[table] = append(out.UnprocessedItems[table], req)
				continue
			}
			delete(f.items, keyOf(req.DeleteRequest.Key))
		}
	}
	f.unprocessed = 0
	return out, nil
}
