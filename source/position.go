package source

import (
	"errors"
	"fmt"
	"strings"

	sdk "github.com/conduitio/conduit-connector-sdk"
)

var ErrInvalidPosition = errors.New("invalid position")

// position is the composite of the shard id and the sequence number of a
// record, encoded as "shardID_sequenceNumber".
type position struct {
	ShardID        string
	SequenceNumber string
}

func (p position) ToSDK() sdk.Position {
	return sdk.Position(p.ShardID + "_" + p.SequenceNumber)
}

func parsePosition(p sdk.Position) (position, error) {
	shardID, seq, ok := strings.Cut(string(p), "_")
	if !ok || shardID == "" || seq == "" {
		return position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, string(p))
	}
	return position{ShardID: shardID, SequenceNumber: seq}, nil
}
