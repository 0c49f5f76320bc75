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

type companyRecord struct {
	PK         string `dynamodbav:"PK"`
	SK         string `dynamodbav:"SK"`
	GSI1PK     string `dynamodbav:"GSI1PK"`
	GSI1SK     string `dynamodbav:"GSI1SK"`
	EntityType string `dynamodbav:"entity_type"`
	domain.Company
}

type companyRepository struct {
	store *Store
}

func NewCompanyRepository(store *Store) domain.CompanyRepository {
	return &companyRepository{store: store}
}

func (r *companyRepository) Put(ctx context.Context, c *domain.Company) error {
	rec := companyRecord{
		PK:         compositeKey(kindCompany, c.ID),
		SK:         compositeKey(kindCompany, c.ID),
		GSI1PK:     kindCompany,
		GSI1SK:     c.Name,
		EntityType: "company",
		Company:    *c,
	}
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return mapErr("marshal company", err)
	}
	_, err = r.store.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.store.table),
		Item:      item,
	})
	if err != nil {
		return mapErr("put company", err)
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	out, err := r.store.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.store.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: compositeKey(kindCompany, id)},
			"SK": &types.AttributeValueMemberS{Value: compositeKey(kindCompany, id)},
		},
	})
	if err != nil {
		return nil, mapErr("get company", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var rec companyRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, mapErr("unmarshal company", err)
	}
	return &rec.Company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key("GSI1PK").Equal(expression.Value(kindCompany))).
		Build()
	if err != nil {
		return nil, mapErr("build company query", err)
	}
	companies := make([]*domain.Company, 0)
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
			return nil, mapErr("list companies", err)
		}
		for _, item := range out.Items {
			var rec companyRecord
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, mapErr("unmarshal company", err)
			}
			c := rec.Company
			companies = append(companies, &c)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return companies, nil
}
