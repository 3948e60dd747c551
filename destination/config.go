package destination

import (
	"errors"
	"strings"

	"github.com/crewton/conduit-connector-kinesis/common"
)

//go:generate paramgen -output=config_paramgen.go Config
type Config struct {
	// Config includes parameters that are the same in the source and destination.
	common.Config

	// PartitionKey is hashed by Kinesis to pick the shard a record is written
	// to. Accepts %{field} references which are resolved per record.
	PartitionKey string `json:"partitionKey" validate:"required"`
}

func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.PartitionKey) == "" {
		return errors.New(`"partitionKey" is required`)
	}
	return nil
}
