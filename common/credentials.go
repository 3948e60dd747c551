package common

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	envAccessKeyID     = "AWS_ACCESS_KEY_ID"
	envSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	envSessionToken    = "AWS_SESSION_TOKEN"
)

var (
	ErrInvalidCredentials = errors.New(`credentials must be of the form "/path/to/file" or ["id", "secret"]`)
	ErrMissingCredentials = errors.New("missing AWS credentials")
)

// Credentials is a resolved AWS key pair.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// ResolveCredentials turns a credentials specification into a key pair.
// Two elements are an explicit id and secret, one element is the path of a
// key=value credentials file, and no elements fall back to the environment
// as read through getenv.
func ResolveCredentials(spec []string, getenv func(string) string) (Credentials, error) {
	var creds Credentials

	switch len(spec) {
	case 0:
		creds = Credentials{
			AccessKeyID:     getenv(envAccessKeyID),
			SecretAccessKey: getenv(envSecretAccessKey),
			SessionToken:    getenv(envSessionToken),
		}
	case 1:
		var err error
		creds, err = readCredentialsFile(spec[0])
		if err != nil {
			return Credentials{}, err
		}
	case 2:
		creds = Credentials{
			AccessKeyID:     spec[0],
			SecretAccessKey: spec[1],
		}
	default:
		return Credentials{}, ErrInvalidCredentials
	}

	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return Credentials{}, ErrMissingCredentials
	}

	return creds, nil
}

func readCredentialsFile(path string) (Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer f.Close()

	var creds Credentials
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}

		param, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		switch strings.TrimSpace(param) {
		case envAccessKeyID:
			creds.AccessKeyID = strings.TrimSpace(value)
		case envSecretAccessKey:
			creds.SecretAccessKey = strings.TrimSpace(value)
		case envSessionToken:
			creds.SessionToken = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials file: %w", err)
	}

	return creds, nil
}
