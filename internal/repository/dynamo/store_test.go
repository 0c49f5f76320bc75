package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"richmondtech/internal/domain"
)

// fakeDynamo scripts SDK responses and captures the inputs the
// repositories build.
type fakeDynamo struct {
	putInputs  []*dynamodb.PutItemInput
	getInputs  []*dynamodb.GetItemInput
	queryCalls []*dynamodb.QueryInput
	scanCalls  []*dynamodb.ScanInput

	getOutput    *dynamodb.GetItemOutput
	queryOutputs []*dynamodb.QueryOutput
	scanOutputs  []*dynamodb.ScanOutput

	err         error
	describeErr error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, in)
	return &dynamodb.PutItemOutput{}, f.err
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getInputs = append(f.getInputs, in)
	if f.err != nil {
		return nil, f.err
	}
	if f.getOutput != nil {
		return f.getOutput, nil
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryCalls = append(f.queryCalls, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queryOutputs) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOutputs[0]
	f.queryOutputs = f.queryOutputs[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanCalls = append(f.scanCalls, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scanOutputs) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scanOutputs[0]
	f.scanOutputs = f.scanOutputs[1:]
	return out, nil
}

func (f *fakeDynamo) DescribeTable(_ context.Context, _ *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return &dynamodb.DescribeTableOutput{}, f.describeErr
}

const testTable = "TestTable"

func newTestStore(api DynamoAPI) *Store { return NewStore(api, testTable) }

func stringAttr(item map[string]types.AttributeValue, name string) string {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return ""
	}
	return v.Value
}

func TestStore_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		require.NoError(t, newTestStore(&fakeDynamo{}).Ping(context.Background()))
	})
	t.Run("unreachable maps to StoreUnavailable", func(t *testing.T) {
		s := newTestStore(&fakeDynamo{describeErr: errors.New("connection refused")})
		err := s.Ping(context.Background())
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestMapErr(t *testing.T) {
	assert.ErrorIs(t, mapErr("op", context.DeadlineExceeded), domain.ErrTimeout)
	assert.ErrorIs(t, mapErr("op", context.Canceled), context.Canceled)
	assert.ErrorIs(t, mapErr("op", errors.New("throttled")), domain.ErrStoreUnavailable)
	assert.NotContains(t, mapErr("get venue", errors.New("x")).Error(), testTable,
		"errors must not leak the table name to callers")
}

func TestVenueRepository_Put_KeyScheme(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewVenueRepository(newTestStore(fake))

	err := repo.Put(context.Background(), &domain.Venue{ID: "venue_startup_va", Name: "Startup Virginia"})
	require.NoError(t, err)
	require.Len(t, fake.putInputs, 1)

	in := fake.putInputs[0]
	assert.Equal(t, testTable, *in.TableName)
	assert.Equal(t, "VENUE#venue_startup_va", stringAttr(in.Item, "PK"))
	assert.Equal(t, "VENUE#venue_startup_va", stringAttr(in.Item, "SK"))
	assert.Equal(t, "VENUE", stringAttr(in.Item, "GSI1PK"))
	assert.Equal(t, "Startup Virginia", stringAttr(in.Item, "GSI1SK"))
	assert.Equal(t, "venue", stringAttr(in.Item, "entity_type"))
}

func TestVenueRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(venueRecord{
			PK: "VENUE#v1", SK: "VENUE#v1", GSI1PK: "VENUE", GSI1SK: "The Spot",
			EntityType: "venue",
			Venue:      domain.Venue{ID: "v1", Name: "The Spot", Capacity: 80},
		})
		require.NoError(t, err)
		fake := &fakeDynamo{getOutput: &dynamodb.GetItemOutput{Item: item}}
		repo := NewVenueRepository(newTestStore(fake))

		v, err := repo.GetByID(context.Background(), "v1")
		require.NoError(t, err)
		assert.Equal(t, "The Spot", v.Name)
		assert.Equal(t, 80, v.Capacity)

		key := fake.getInputs[0].Key
		assert.Equal(t, "VENUE#v1", key["PK"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("missing item is NotFound", func(t *testing.T) {
		repo := NewVenueRepository(newTestStore(&fakeDynamo{}))
		_, err := repo.GetByID(context.Background(), "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestVenueRepository_List_Paginates(t *testing.T) {
	page := func(id, name string, last bool) *dynamodb.QueryOutput {
		item, _ := attributevalue.MarshalMap(venueRecord{
			Venue: domain.Venue{ID: id, Name: name},
		})
		out := &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}
		if !last {
			out.LastEvaluatedKey = map[string]types.AttributeValue{
				"PK": &types.AttributeValueMemberS{Value: "VENUE#" + id},
			}
		}
		return out
	}
	fake := &fakeDynamo{queryOutputs: []*dynamodb.QueryOutput{
		page("v1", "Alpha", false),
		page("v2", "Beta", true),
	}}
	repo := NewVenueRepository(newTestStore(fake))

	venues, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Alpha", venues[0].Name)

	require.Len(t, fake.queryCalls, 2)
	assert.Equal(t, indexGSI1, *fake.queryCalls[0].IndexName)
	assert.Nil(t, fake.queryCalls[0].ExclusiveStartKey)
	assert.NotNil(t, fake.queryCalls[1].ExclusiveStartKey, "second page resumes from LastEvaluatedKey")
}
