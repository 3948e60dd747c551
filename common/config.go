package common

import (
	"errors"
	"os"
	"strings"
)

const defaultRegion = "us-east-1"

// Config contains shared config parameters, common to the source and
// destination.
type Config struct {
	// StreamName is the name of the Kinesis Data Stream. The destination
	// accepts %{field} references which are resolved per record.
	StreamName string `json:"streamName" validate:"required"`

	// Credentials of the AWS account, comma separated. Either "id,secret",
	// a path to a file containing AWS_ACCESS_KEY_ID=... and
	// AWS_SECRET_ACCESS_KEY=..., or empty to read the AWS_ACCESS_KEY_ID and
	// AWS_SECRET_ACCESS_KEY environment variables. A value naming an existing
	// file is used as a path as a whole, even when it contains a comma.
	Credentials string `json:"credentials"`

	// AWSRegion is the region where the stream is hosted
	AWSRegion string `json:"aws.region" default:"us-east-1"`

	// URL for endpoint override - testing/dry-run only
	AWSURL string `json:"aws.url"`
}

// CredentialsSpec splits the credentials parameter into its elements.
func (c Config) CredentialsSpec() []string {
	if path := strings.TrimSpace(c.Credentials); path != "" {
		if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
			return []string{path}
		}
	}

	var spec []string
	for _, part := range strings.Split(c.Credentials, ",") {
		if part = strings.TrimSpace(part); part != "" {
			spec = append(spec, part)
		}
	}
	return spec
}

// Validate checks the shared parameters and fills in defaults the SDK
// leaves empty when the connector is configured directly.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StreamName) == "" {
		return errors.New(`"streamName" is required`)
	}
	if len(c.CredentialsSpec()) > 2 {
		return ErrInvalidCredentials
	}
	if c.AWSRegion == "" {
		c.AWSRegion = defaultRegion
	}
	return nil
}
