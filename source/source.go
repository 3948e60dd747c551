package source

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	sdk "github.com/conduitio/conduit-connector-sdk"
	"golang.org/x/time/rate"
)

// Kinesis allows five GetRecords calls per second on each shard.
const getRecordsPerSecond = 5

const (
	MetadataStreamName     = "kinesis.streamName"
	MetadataShardID        = "kinesis.shardId"
	MetadataSequenceNumber = "kinesis.sequenceNumber"
	MetadataPartitionKey   = "kinesis.partitionKey"
	MetadataArrivalTime    = "kinesis.arrivalTime"
)

type Source struct {
	sdk.UnimplementedSource

	config Config

	// client is the Client for the AWS Kinesis API
	client Client

	shards []*shard
	buffer []sdk.Record
}

type shard struct {
	id       string
	iterator *string
	// lastSequence is the sequence number of the last record read, used to
	// renew an expired iterator.
	lastSequence string
	limiter      *rate.Limiter
}

func New() sdk.Source {
	return sdk.SourceWithMiddleware(&Source{}, sdk.DefaultSourceMiddleware()...)
}

func (s *Source) Parameters() map[string]sdk.Parameter {
	return Config{}.Parameters()
}

func (s *Source) Configure(ctx context.Context, cfg map[string]string) error {
	sdk.Logger(ctx).Info().Msg("Configuring Source...")
	err := sdk.Util.ParseConfig(cfg, &s.config)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	awsCfg, err := s.config.AWSConfig(ctx)
	if err != nil {
		return err
	}

	s.client = kinesis.NewFromConfig(awsCfg)

	sdk.Logger(ctx).Info().Str("stream", s.config.StreamName).Msg("Registering kinesis source")

	return nil
}

func (s *Source) Open(ctx context.Context, pos sdk.Position) error {
	var resume position
	if len(pos) > 0 {
		var err error
		if resume, err = parsePosition(pos); err != nil {
			return err
		}
	}

	ids := s.config.ShardIDs()
	if len(ids) == 0 {
		var err error
		if ids, err = s.listShards(ctx); err != nil {
			return err
		}
	}

	s.shards = make([]*shard, 0, len(ids))
	for _, id := range ids {
		sh := &shard{
			id:      id,
			limiter: rate.NewLimiter(rate.Limit(getRecordsPerSecond), 1),
		}
		if id == resume.ShardID {
			sh.lastSequence = resume.SequenceNumber
		}

		if err := s.renewIterator(ctx, sh); err != nil {
			return err
		}
		s.shards = append(s.shards, sh)
	}

	if resume.ShardID != "" && !s.hasShard(resume.ShardID) {
		sdk.Logger(ctx).Warn().
			Str("shardId", resume.ShardID).
			Msg("position refers to a shard that is not being read, ignoring it")
	}

	sdk.Logger(ctx).Info().
		Str("stream", s.config.StreamName).
		Int("shards", len(s.shards)).
		Msg("kinesis source opened")

	return nil
}

// Read returns buffered records first. With an empty buffer it polls every
// open shard once and waits the configured sleep when nothing came back.
func (s *Source) Read(ctx context.Context) (sdk.Record, error) {
	if len(s.buffer) == 0 {
		if err := s.poll(ctx); err != nil {
			return sdk.Record{}, err
		}
	}

	if len(s.buffer) == 0 {
		timer := time.NewTimer(s.config.Sleep)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return sdk.Record{}, ctx.Err()
		case <-timer.C:
			return sdk.Record{}, sdk.ErrBackoffRetry
		}
	}

	rec := s.buffer[0]
	s.buffer[0] = sdk.Record{}
	s.buffer = s.buffer[1:]

	return rec, nil
}

func (s *Source) Ack(ctx context.Context, pos sdk.Position) error {
	p, err := parsePosition(pos)
	if err != nil {
		return err
	}

	sdk.Logger(ctx).Debug().
		Str("shardId", p.ShardID).
		Str("sequenceNumber", p.SequenceNumber).
		Msg("ack'd record")

	return nil
}

func (s *Source) Teardown(ctx context.Context) error {
	s.shards = nil
	s.buffer = nil
	s.client = nil

	return nil
}

func (s *Source) hasShard(id string) bool {
	for _, sh := range s.shards {
		if sh.id == id {
			return true
		}
	}
	return false
}

func (s *Source) listShards(ctx context.Context) ([]string, error) {
	var ids []string

	input := &kinesis.ListShardsInput{
		StreamName: aws.String(s.config.StreamName),
	}
	for {
		resp, err := s.client.ListShards(ctx, input)
		if err != nil {
			var notFound *types.ResourceNotFoundException
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("stream %q not found: %w", s.config.StreamName, err)
			}
			return nil, fmt.Errorf("error retrieving kinesis shards: %w", err)
		}

		for _, sh := range resp.Shards {
			ids = append(ids, aws.ToString(sh.ShardId))
		}

		if resp.NextToken == nil {
			return ids, nil
		}
		// the stream name must not be set together with a token
		input = &kinesis.ListShardsInput{NextToken: resp.NextToken}
	}
}

// renewIterator points the shard's iterator after the last record read, or
// at the configured starting point when nothing was read yet.
func (s *Source) renewIterator(ctx context.Context, sh *shard) error {
	input := &kinesis.GetShardIteratorInput{
		StreamName: aws.String(s.config.StreamName),
		ShardId:    aws.String(sh.id),
	}

	switch {
	case sh.lastSequence != "":
		input.ShardIteratorType = types.ShardIteratorTypeAfterSequenceNumber
		input.StartingSequenceNumber = aws.String(sh.lastSequence)
	case s.config.StartFromLatest:
		input.ShardIteratorType = types.ShardIteratorTypeLatest
	default:
		input.ShardIteratorType = types.ShardIteratorTypeTrimHorizon
	}

	resp, err := s.client.GetShardIterator(ctx, input)
	if err != nil {
		return fmt.Errorf("error creating iterator for shard %s: %w", sh.id, err)
	}

	sh.iterator = resp.ShardIterator

	return nil
}

// poll calls GetRecords once on every open shard and buffers the results.
// Closed shards are dropped.
func (s *Source) poll(ctx context.Context) error {
	open := s.shards[:0]
	for i, sh := range s.shards {
		if err := sh.limiter.Wait(ctx); err != nil {
			s.shards = append(open, s.shards[i:]...)
			return err
		}

		resp, err := s.client.GetRecords(ctx, &kinesis.GetRecordsInput{
			ShardIterator: sh.iterator,
			Limit:         aws.Int32(int32(s.config.BatchSize)),
		})
		if err != nil {
			var expired *types.ExpiredIteratorException
			if !errors.As(err, &expired) {
				s.shards = append(open, s.shards[i:]...)
				return fmt.Errorf("error reading records from shard %s: %w", sh.id, err)
			}

			sdk.Logger(ctx).Debug().Str("shardId", sh.id).Msg("shard iterator expired, renewing")
			if err := s.renewIterator(ctx, sh); err != nil {
				s.shards = append(open, s.shards[i:]...)
				return err
			}
			open = append(open, sh)
			continue
		}

		for _, rec := range resp.Records {
			s.buffer = append(s.buffer, s.toRecord(sh.id, rec))
			sh.lastSequence = aws.ToString(rec.SequenceNumber)
		}

		if resp.NextShardIterator == nil {
			sdk.Logger(ctx).Info().Str("shardId", sh.id).Msg("shard is closed")
			continue
		}
		sh.iterator = resp.NextShardIterator
		open = append(open, sh)
	}
	s.shards = open

	return nil
}

func (s *Source) toRecord(shardID string, rec types.Record) sdk.Record {
	pos := position{
		ShardID:        shardID,
		SequenceNumber: aws.ToString(rec.SequenceNumber),
	}

	metadata := sdk.Metadata{
		MetadataStreamName:     s.config.StreamName,
		MetadataShardID:        shardID,
		MetadataSequenceNumber: pos.SequenceNumber,
		MetadataPartitionKey:   aws.ToString(rec.PartitionKey),
	}
	if rec.ApproximateArrivalTimestamp != nil {
		metadata[MetadataArrivalTime] = rec.ApproximateArrivalTimestamp.UTC().Format(time.RFC3339Nano)
	}

	return sdk.Util.Source.NewRecordCreate(
		pos.ToSDK(),
		metadata,
		sdk.RawData(aws.ToString(rec.PartitionKey)),
		sdk.RawData(s.decode(rec.Data)),
	)
}

// decode undoes the base64 encoding applied by the destination when enabled.
// Data that is not valid base64 is passed through.
func (s *Source) decode(data []byte) []byte {
	if !s.config.DecodeBase64 {
		return data
	}

	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(decoded, data)
	if err != nil {
		return data
	}
	return decoded[:n]
}
