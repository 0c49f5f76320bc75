package dynamo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"richmondtech/config"
	"richmondtech/internal/domain"
)

// Entity kind discriminators used in the composite key scheme. All four
// kinds share one table: PK=SK=<KIND>#<id>, with GSI1 providing the
// per-kind listing (sorted by name) and the event date-range path
// (sorted by RFC3339 start time).
const (
	kindVenue   = "VENUE"
	kindCompany = "COMPANY"
	kindMeetup  = "MEETUP"
	kindEvent   = "EVENT"

	indexGSI1 = "GSI1"
)

// DynamoAPI is the subset of the DynamoDB client the store uses. Tests
// fake this interface instead of the SDK client.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// Store wraps the DynamoDB client with the table name and key helpers.
// One Store backs all four entity repositories.
type Store struct {
	api   DynamoAPI
	table string
}

func NewStore(api DynamoAPI, table string) *Store {
	return &Store{api: api, table: table}
}

// NewClient builds a DynamoDB client from application config. Static
// credentials are used when provided; otherwise the default chain applies.
func NewClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretKey != "" {
		awsCfg := aws.Config{
			Region: cfg.AWSRegion,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
			),
			HTTPClient: &http.Client{Timeout: 10 * time.Second},
		}
		return dynamodb.NewFromConfig(awsCfg), nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// Ping verifies the table is reachable.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.api.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return mapErr("describe table", err)
	}
	return nil
}

func compositeKey(kind, id string) string {
	return kind + "#" + id
}

// mapErr classifies a DynamoDB client failure. Deadline expiry surfaces
// as ErrTimeout; everything else as ErrStoreUnavailable.
func mapErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
