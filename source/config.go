package source

import (
	"errors"
	"strings"
	"time"

	"github.com/crewton/conduit-connector-kinesis/common"
)

const (
	defaultBatchSize = 500
	maxBatchSize     = 10000
	defaultSleep     = 250 * time.Millisecond
)

//go:generate paramgen -output=config_paramgen.go Config
type Config struct {
	common.Config

	// Shards to read from, comma separated. Leave empty to read all shards
	// of the stream.
	Shards string `json:"shards"`

	// BatchSize is the number of records to get from a shard at a time.
	BatchSize int `json:"batchSize" default:"500"`

	// Sleep is the time to wait before attempting to get more records after
	// getting to the end of the stream.
	Sleep time.Duration `json:"sleep" default:"250ms"`

	// If true, sets the iterator type to LATEST (iterates from the point
	// that the connection begins = CDC). Otherwise it sets the iterator type
	// to TRIM_HORIZON (iterates from the oldest record in the shard = snapshot).
	StartFromLatest bool `json:"startFromLatest" default:"false"`

	// DecodeBase64 decodes record data that was base64 encoded by the
	// destination. Data that is not valid base64 is emitted unchanged.
	DecodeBase64 bool `json:"decodeBase64" default:"false"`
}

// ShardIDs returns the configured shards, nil meaning all of them.
func (c Config) ShardIDs() []string {
	var ids []string
	for _, id := range strings.Split(c.Shards, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}

	switch {
	case c.BatchSize == 0:
		c.BatchSize = defaultBatchSize
	case c.BatchSize < 0 || c.BatchSize > maxBatchSize:
		return errors.New(`"batchSize" must be between 1 and 10000`)
	}

	switch {
	case c.Sleep == 0:
		c.Sleep = defaultSleep
	case c.Sleep < 0:
		return errors.New(`"sleep" must not be negative`)
	}

	return nil
}
