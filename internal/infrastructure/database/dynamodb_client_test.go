package database

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "local", creds.SecretAccessKey)
}

func TestNewDynamoDBConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIA")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIA", creds.AccessKeyID)
}

func TestDynamoDBEndpointOption(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	var o dynamodb.Options
	dynamoDBEndpointOption()(&o)
	assert.Equal(t, "http://localhost:8000", aws.ToString(o.BaseEndpoint))

	t.Setenv("DYNAMODB_ENDPOINT", "")
	o = dynamodb.Options{}
	dynamoDBEndpointOption()(&o)
	assert.Nil(t, o.BaseEndpoint)
}
