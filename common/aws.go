package common

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// AWSConfig resolves the configured credentials and loads the AWS config the
// Kinesis client is built from.
func (c Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	creds, err := ResolveCredentials(c.CredentialsSpec(), os.Getenv)
	if err != nil {
		return aws.Config{}, err
	}

	return LoadAWSConfig(ctx, c.AWSRegion, c.AWSURL, creds)
}

// LoadAWSConfig builds an aws.Config with static credentials. A non-empty
// url overrides the service endpoint, e.g. for localstack.
func LoadAWSConfig(ctx context.Context, region, url string, creds Credentials) (aws.Config, error) {
	var cfgOptions []func(*config.LoadOptions) error
	cfgOptions = append(cfgOptions, config.WithRegion(region))
	cfgOptions = append(cfgOptions, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			creds.SessionToken)))

	if url != "" {
		cfgOptions = append(cfgOptions, config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(func(_, _ string, _ ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				PartitionID:       "aws",
				URL:               url,
				SigningRegion:     region,
				HostnameImmutable: true,
			}, nil
		},
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, cfgOptions...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config with given credentials : %w", err)
	}

	return awsCfg, nil
}
