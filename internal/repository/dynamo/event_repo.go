package dynamo

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"richmondtech/internal/domain"
)

type eventRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"entity_type"`
	domain.Event
}

type eventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) domain.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Put(ctx context.Context, e *domain.Event) error {
	rec := eventRecord{
		PK: compositeKey(kindEvent, e.ID),
		SK: compositeKey(kindEvent, e.ID),
		// GSI1 sorts events by start time so the upcoming-events path is
		// a single range query.
		GSI1PK:     kindEvent,
		GSI1SK:     e.StartTime.UTC().Format(time.RFC3339),
		EntityType: "event",
		Event:      *e,
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return mapErr("marshal event", err)
	}
	_, err = r.store.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.store.table),
		Item:      item,
	})
	if err != nil {
		return mapErr("put event", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	out, err := r.store.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.store.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: compositeKey(kindEvent, id)},
			"SK": &types.AttributeValueMemberS{Value: compositeKey(kindEvent, id)},
		},
	})
	if err != nil {
		return nil, mapErr("get event", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var rec eventRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, mapErr("unmarshal event", err)
	}
	return &rec.Event, nil
}

// QueryByDateRange returns events with start in [start, end), ascending.
func (r *eventRepository) QueryByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	keyCond := expression.Key("GSI1PK").Equal(expression.Value(kindEvent)).
		And(expression.Key("GSI1SK").Between(
			expression.Value(start.UTC().Format(time.RFC3339)),
			expression.Value(end.UTC().Format(time.RFC3339)),
		))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, mapErr("build event query", err)
	}
	events := make([]*domain.Event, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.store.api.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.store.table),
			IndexName:                 aws.String(indexGSI1),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
			ScanIndexForward:          aws.Bool(true),
		})
		if err != nil {
			return nil, mapErr("query events", err)
		}
		for _, item := range out.Items {
			var rec eventRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, mapErr("unmarshal event", err)
			}
			// BETWEEN is inclusive on both bounds; the contract is an
			// exclusive end.
			if !rec.Event.StartTime.Before(end) {
				continue
			}
			e := rec.Event
			events = append(events, &e)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return events, nil
}

func (r *eventRepository) ScanAll(ctx context.Context) ([]*domain.Event, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("entity_type").Equal(expression.Value("event"))).
		Build()
	if err != nil {
		return nil, mapErr("build event scan", err)
	}
	events := make([]*domain.Event, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.store.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.store.table),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, mapErr("scan events", err)
		}
		for _, item := range out.Items {
			var rec eventRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, mapErr("unmarshal event", err)
			}
			e := rec.Event
			events = append(events, &e)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events, nil
}
