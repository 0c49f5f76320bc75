package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"richmondtech/config"
)

// ResolveModelKey returns the model API key for the current
// environment: the env-provided key wins, then the named Secrets
// Manager secret, then empty (model disabled).
func ResolveModelKey(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.ModelAPIKey != "" {
		return cfg.ModelAPIKey, nil
	}
	if cfg.ModelAPISecret == "" {
		return "", nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return "", fmt.Errorf("secrets: load aws config: %w", err)
	}
	client := secretsmanager.NewFromConfig(awsCfg)

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.ModelAPISecret),
	})
	if err != nil {
		return "", fmt.Errorf("secrets: get %s: %w", cfg.ModelAPISecret, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("secrets: %s has no string value", cfg.ModelAPISecret)
	}

	// The secret is either the bare key or a JSON object with an
	// "api_key" field.
	var parsed struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal([]byte(*out.SecretString), &parsed); err == nil && parsed.APIKey != "" {
		return parsed.APIKey, nil
	}
	return *out.SecretString, nil
}
