package destination

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	sdk "github.com/conduitio/conduit-connector-sdk"
	"github.com/crewton/conduit-connector-kinesis/event"
	"github.com/google/uuid"
)

// ErrShuttingDown is returned by Write for records that were not sent
// because Teardown was already called.
var ErrShuttingDown = errors.New("destination is shutting down")

type Destination struct {
	sdk.UnimplementedDestination

	config Config

	// client is the Client for the AWS Kinesis API
	client Client

	streamName   event.Template
	partitionKey event.Template

	stopping atomic.Bool
}

// New creates a Destination and wrap it in the default middleware.
func New() sdk.Destination {
	return sdk.DestinationWithMiddleware(&Destination{}, sdk.DefaultDestinationMiddleware()...)
}

func (d *Destination) Parameters() map[string]sdk.Parameter {
	return Config{}.Parameters()
}

func (d *Destination) Configure(ctx context.Context, cfg map[string]string) error {
	sdk.Logger(ctx).Info().Msg("Configuring Destination...")
	err := sdk.Util.ParseConfig(cfg, &d.config)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := d.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	d.streamName = event.ParseTemplate(d.config.StreamName)
	d.partitionKey = event.ParseTemplate(d.config.PartitionKey)

	awsCfg, err := d.config.AWSConfig(ctx)
	if err != nil {
		return err
	}

	d.client = kinesis.NewFromConfig(awsCfg)

	sdk.Logger(ctx).Info().
		Str("stream", d.config.StreamName).
		Str("partitionKey", d.config.PartitionKey).
		Msg("Registering kinesis destination")

	return nil
}

func (d *Destination) Open(ctx context.Context) error {
	d.stopping.Store(false)

	// the stream can only be checked up front when it does not depend on the record
	if !d.streamName.IsStatic() {
		return nil
	}

	_, err := d.client.DescribeStreamSummary(ctx, &kinesis.DescribeStreamSummaryInput{
		StreamName: aws.String(d.streamName.String()),
	})
	if err != nil {
		sdk.Logger(ctx).Error().Err(err).Msg("error when attempting to test connection to stream")
		return err
	}

	return nil
}

// Write puts every record into Kinesis with its own PutRecord call. Records
// left over once the destination is shutting down are not sent.
func (d *Destination) Write(ctx context.Context, records []sdk.Record) (int, error) {
	for i, record := range records {
		if d.stopping.Load() {
			return i, ErrShuttingDown
		}
		if err := ctx.Err(); err != nil {
			return i, err
		}

		if err := d.put(ctx, record); err != nil {
			return i, err
		}
	}

	return len(records), nil
}

func (d *Destination) put(ctx context.Context, record sdk.Record) error {
	e := event.FromRecord(record)

	stream := d.streamName.Execute(e)
	partitionKey := d.partitionKey.Execute(e)
	if partitionKey == "" {
		partitionKey = uuid.New().String()
		sdk.Logger(ctx).Warn().
			Str("template", d.partitionKey.String()).
			Msg("partition key resolved to an empty string, using a random key")
	}

	payload, err := e.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	resp, err := d.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(stream),
		PartitionKey: aws.String(partitionKey),
		Data:         encode(payload),
	})
	if err != nil {
		return fmt.Errorf("error putting record to stream %q: %w", stream, err)
	}

	sdk.Logger(ctx).Debug().
		Str("shardId", aws.ToString(resp.ShardId)).
		Str("sequenceNumber", aws.ToString(resp.SequenceNumber)).
		Msg("put event to kinesis")

	return nil
}

func encode(payload []byte) []byte {
	data := make([]byte, base64.StdEncoding.EncodedLen(len(payload)))
	base64.StdEncoding.Encode(data, payload)
	return data
}

func (d *Destination) Teardown(ctx context.Context) error {
	// Write may still be running, so only flag the shutdown and keep the client
	d.stopping.Store(true)

	return nil
}
