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

type meetupRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"entity_type"`
	domain.MeetupGroup
}

type meetupGroupRepository struct {
	store *Store
}

func NewMeetupGroupRepository(store *Store) domain.MeetupGroupRepository {
	return &meetupGroupRepository{store: store}
}

func (r *meetupGroupRepository) Put(ctx context.Context, g *domain.MeetupGroup) error {
	rec := meetupRecord{
		PK:          compositeKey(kindMeetup, g.ID),
		SK:          compositeKey(kindMeetup, g.ID),
		GSI1PK:      kindMeetup,
		GSI1SK:      g.Name,
		EntityType:  "meetup",
		MeetupGroup: *g,
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return mapErr("marshal meetup group", err)
	}
	_, err = r.store.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.store.table),
		Item:      item,
	})
	if err != nil {
		return mapErr("put meetup group", err)
	}
	return nil
}

func (r *meetupGroupRepository) GetByID(ctx context.Context, id string) (*domain.MeetupGroup, error) {
	out, err := r.store.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.store.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: compositeKey(kindMeetup, id)},
			"SK": &types.AttributeValueMemberS{Value: compositeKey(kindMeetup, id)},
		},
	})
	if err != nil {
		return nil, mapErr("get meetup group", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var rec meetupRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, mapErr("unmarshal meetup group", err)
	}
	return &rec.MeetupGroup, nil
}

func (r *meetupGroupRepository) List(ctx context.Context) ([]*domain.MeetupGroup, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value(kindMeetup))).
		Build()
	if err != nil {
		return nil, mapErr("build meetup query", err)
	}
	groups := make([]*domain.MeetupGroup, 0)
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
			return nil, mapErr("list meetup groups", err)
		}
		for _, item := range out.Items {
			var rec meetupRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, mapErr("unmarshal meetup group", err)
			}
			g := rec.MeetupGroup
			groups = append(groups, &g)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return groups, nil
}
