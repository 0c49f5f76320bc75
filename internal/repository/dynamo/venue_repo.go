package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"richmondtech/internal/domain"
)

type venueRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"entity_type"`
	domain.Venue
}

type venueRepository struct {
	store *Store
}

func NewVenueRepository(store *Store) domain.VenueRepository {
	return &venueRepository{store: store}
}

func (r *venueRepository) Put(ctx context.Context, v *domain.Venue) error {
	rec := venueRecord{
		PK:         compositeKey(kindVenue, v.ID),
		SK:         compositeKey(kindVenue, v.ID),
		GSI1PK:     kindVenue,
		GSI1SK:     v.Name,
		EntityType: "venue",
		Venue:      *v,
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return mapErr("marshal venue", err)
	}
	_, err = r.store.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.store.table),
		Item:      item,
	})
	if err != nil {
		return mapErr("put venue", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	out, err := r.store.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.store.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: compositeKey(kindVenue, id)},
			"SK": &types.AttributeValueMemberS{Value: compositeKey(kindVenue, id)},
		},
	})
	if err != nil {
		return nil, mapErr("get venue", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var rec venueRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, mapErr("unmarshal venue", err)
	}
	return &rec.Venue, nil
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value(kindVenue))).
		Build()
	if err != nil {
		return nil, mapErr("build venue query", err)
	}
	venues := make([]*domain.Venue, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.store.api.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(r.store.table),
			IndexName:                 aws.String(indexGSI1),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, mapErr("list venues", err)
		}
		for _, item := range out.Items {
			var rec venueRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, mapErr("unmarshal venue", err)
			}
			v := rec.Venue
			venues = append(venues, &v)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return venues, nil
}
