package source

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/aws/aws-sdk-go-v2/service/kinesis/types"
	sdk "github.com/conduitio/conduit-connector-sdk"
	"github.com/crewton/conduit-connector-kinesis/common"
	"github.com/crewton/conduit-connector-kinesis/test"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func testConfig() map[string]string {
	return map[string]string{
		"streamName":  "logs",
		"credentials": "accesskeymock,accesssecretmock",
		"aws.region":  "us-east-1",
		"sleep":       "1ms",
	}
}

func newTestSource(ctx context.Context, t *testing.T, cfg map[string]string) (*Source, *test.MockSourceClient) {
	t.Helper()
	is := is.New(t)

	con := &Source{}
	err := con.Configure(ctx, cfg)
	is.NoErr(err)

	mockClient := test.NewMockSourceClient(gomock.NewController(t))
	con.client = mockClient

	return con, mockClient
}

func kinesisRecord(seq, partitionKey string, data []byte) types.Record {
	return types.Record{
		SequenceNumber: aws.String(seq),
		PartitionKey:   aws.String(partitionKey),
		Data:           data,
	}
}

func iteratorFor(shardID string) *kinesis.GetShardIteratorOutput {
	return &kinesis.GetShardIteratorOutput{ShardIterator: aws.String("it-" + shardID)}
}

func TestTeardown_NoOpen(t *testing.T) {
	is := is.New(t)
	con := New()
	err := con.Teardown(context.Background())
	is.NoErr(err)
}

func TestConfigure_Defaults(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	delete(cfg, "sleep")
	con, _ := newTestSource(ctx, t, cfg)

	is.Equal(con.config.BatchSize, 500)
	is.Equal(con.config.Sleep, 250*time.Millisecond)
	is.Equal(con.config.ShardIDs(), []string(nil))
}

func TestConfigure_InvalidCredentials(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	cfg["credentials"] = "a,b,c"

	err := (&Source{}).Configure(context.Background(), cfg)
	is.True(errors.Is(err, common.ErrInvalidCredentials))
}

func TestConfigure_InvalidBatchSize(t *testing.T) {
	is := is.New(t)
	cfg := testConfig()
	cfg["batchSize"] = "20000"

	err := (&Source{}).Configure(context.Background(), cfg)
	is.True(err != nil)
}

func TestOpen_AllShards(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	con, mockClient := newTestSource(ctx, t, testConfig())

	gomock.InOrder(
		mockClient.EXPECT().
			ListShards(gomock.Any(), &kinesis.ListShardsInput{StreamName: aws.String("logs")}).
			Return(&kinesis.ListShardsOutput{
				Shards:    []types.Shard{{ShardId: aws.String("shardId-000000000000")}},
				NextToken: aws.String("page-2"),
			}, nil),
		mockClient.EXPECT().
			ListShards(gomock.Any(), &kinesis.ListShardsInput{NextToken: aws.String("page-2")}).
			Return(&kinesis.ListShardsOutput{
				Shards: []types.Shard{{ShardId: aws.String("shardId-000000000001")}},
			}, nil),
	)

	var iteratorTypes []types.ShardIteratorType
	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *kinesis.GetShardIteratorInput, _ ...func(*kinesis.Options)) (*kinesis.GetShardIteratorOutput, error) {
			iteratorTypes = append(iteratorTypes, in.ShardIteratorType)
			return iteratorFor(aws.ToString(in.ShardId)), nil
		}).
		Times(2)

	is.NoErr(con.Open(ctx, nil))
	is.Equal(len(con.shards), 2)
	is.Equal(iteratorTypes, []types.ShardIteratorType{types.ShardIteratorTypeTrimHorizon, types.ShardIteratorTypeTrimHorizon})
}

func TestOpen_ConfiguredShardsAndPosition(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000, shardId-000000000001"
	cfg["startFromLatest"] = "true"
	con, mockClient := newTestSource(ctx, t, cfg)

	mockClient.EXPECT().ListShards(gomock.Any(), gomock.Any()).Times(0)

	inputs := map[string]*kinesis.GetShardIteratorInput{}
	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *kinesis.GetShardIteratorInput, _ ...func(*kinesis.Options)) (*kinesis.GetShardIteratorOutput, error) {
			inputs[aws.ToString(in.ShardId)] = in
			return iteratorFor(aws.ToString(in.ShardId)), nil
		}).
		Times(2)

	is.NoErr(con.Open(ctx, sdk.Position("shardId-000000000001_49590338271490256608559692538361571095921575989136588898")))

	first := inputs["shardId-000000000000"]
	is.Equal(first.ShardIteratorType, types.ShardIteratorTypeLatest)

	resumed := inputs["shardId-000000000001"]
	is.Equal(resumed.ShardIteratorType, types.ShardIteratorTypeAfterSequenceNumber)
	is.Equal(aws.ToString(resumed.StartingSequenceNumber), "49590338271490256608559692538361571095921575989136588898")
}

func TestOpen_PositionForUnreadShard(t *testing.T) {
	is := is.New(t)

	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	ctx := logger.WithContext(context.Background())

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	var input *kinesis.GetShardIteratorInput
	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *kinesis.GetShardIteratorInput, _ ...func(*kinesis.Options)) (*kinesis.GetShardIteratorOutput, error) {
			input = in
			return iteratorFor(aws.ToString(in.ShardId)), nil
		})

	is.NoErr(con.Open(ctx, sdk.Position("shardId-000000000009_123")))

	is.Equal(len(con.shards), 1)
	is.Equal(aws.ToString(input.ShardId), "shardId-000000000000")
	is.Equal(input.ShardIteratorType, types.ShardIteratorTypeTrimHorizon)
	is.Equal(input.StartingSequenceNumber, nil)
	is.Equal(con.shards[0].lastSequence, "")
	is.True(strings.Contains(logs.String(), "not being read"))
	is.True(strings.Contains(logs.String(), "shardId-000000000009"))
}

func TestOpen_InvalidPosition(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	con, _ := newTestSource(ctx, t, testConfig())
	err := con.Open(ctx, sdk.Position("garbage"))
	is.True(errors.Is(err, ErrInvalidPosition))
}

func TestOpen_StreamNotFound(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	con, mockClient := newTestSource(ctx, t, testConfig())
	mockClient.EXPECT().ListShards(gomock.Any(), gomock.Any()).
		Return(nil, &types.ResourceNotFoundException{Message: aws.String("Stream logs not found")})

	err := con.Open(ctx, nil)
	var notFound *types.ResourceNotFoundException
	is.True(errors.As(err, &notFound))
}

func TestRead_DecoratesRecords(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	cfg["batchSize"] = "2"
	cfg["decodeBase64"] = "true"
	con, mockClient := newTestSource(ctx, t, cfg)

	arrival := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	encoded := []byte(base64.StdEncoding.EncodeToString([]byte(`{"message":"hello"}`)))
	rec := kinesisRecord("100", "web-01", encoded)
	rec.ApproximateArrivalTimestamp = &arrival

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().
		GetRecords(gomock.Any(), &kinesis.GetRecordsInput{
			ShardIterator: aws.String("it-shardId-000000000000"),
			Limit:         aws.Int32(2),
		}).
		Return(&kinesis.GetRecordsOutput{
			Records:           []types.Record{rec, kinesisRecord("101", "web-02", []byte("not base64!"))},
			NextShardIterator: aws.String("it-next"),
		}, nil)

	is.NoErr(con.Open(ctx, nil))

	got, err := con.Read(ctx)
	is.NoErr(err)
	is.Equal(got.Position, sdk.Position("shardId-000000000000_100"))
	is.Equal(got.Key, sdk.RawData("web-01"))
	is.Equal(got.Payload.After, sdk.RawData(`{"message":"hello"}`))
	is.Equal(got.Metadata[MetadataStreamName], "logs")
	is.Equal(got.Metadata[MetadataShardID], "shardId-000000000000")
	is.Equal(got.Metadata[MetadataSequenceNumber], "100")
	is.Equal(got.Metadata[MetadataPartitionKey], "web-01")
	is.Equal(got.Metadata[MetadataArrivalTime], "2024-01-02T03:04:05Z")

	// second record comes from the buffer without another GetRecords call
	got, err = con.Read(ctx)
	is.NoErr(err)
	is.Equal(got.Payload.After, sdk.RawData("not base64!"))
	is.Equal(aws.ToString(con.shards[0].iterator), "it-next")
	is.Equal(con.shards[0].lastSequence, "101")
}

func TestRead_DataUnchangedByDefault(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
		Return(&kinesis.GetRecordsOutput{
			Records: []types.Record{
				// both are valid base64 but must not be decoded
				kinesisRecord("1", "k", []byte("user")),
				kinesisRecord("2", "k", []byte("deadbeef")),
			},
			NextShardIterator: aws.String("it-next"),
		}, nil)

	is.NoErr(con.Open(ctx, nil))

	got, err := con.Read(ctx)
	is.NoErr(err)
	is.Equal(got.Payload.After, sdk.RawData("user"))

	got, err = con.Read(ctx)
	is.NoErr(err)
	is.Equal(got.Payload.After, sdk.RawData("deadbeef"))
}

func TestRead_PacesGetRecordsPerShard(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	var calls []time.Time
	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *kinesis.GetRecordsInput, ...func(*kinesis.Options)) (*kinesis.GetRecordsOutput, error) {
			calls = append(calls, time.Now())
			return &kinesis.GetRecordsOutput{NextShardIterator: aws.String("it-next")}, nil
		}).
		Times(2)

	is.NoErr(con.Open(ctx, nil))

	// both polls come back empty, the sleep between them is only 1ms
	_, err := con.Read(ctx)
	is.True(errors.Is(err, sdk.ErrBackoffRetry))
	_, err = con.Read(ctx)
	is.True(errors.Is(err, sdk.ErrBackoffRetry))

	is.Equal(len(calls), 2)
	// five calls per second, allowing for timer granularity
	is.True(calls[1].Sub(calls[0]) >= 190*time.Millisecond)
}

func TestRead_EndOfStream(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
		Return(&kinesis.GetRecordsOutput{NextShardIterator: aws.String("it-next")}, nil)

	is.NoErr(con.Open(ctx, nil))

	_, err := con.Read(ctx)
	is.Equal(err, sdk.ErrBackoffRetry)
	is.Equal(len(con.shards), 1)
}

func TestRead_ClosedShard(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
		Return(&kinesis.GetRecordsOutput{
			Records: []types.Record{kinesisRecord("7", "k", []byte("last record"))},
		}, nil).
		Times(1)

	is.NoErr(con.Open(ctx, nil))

	got, err := con.Read(ctx)
	is.NoErr(err)
	is.Equal(got.Payload.After, sdk.RawData("last record"))
	is.Equal(len(con.shards), 0)

	// nothing left to poll
	_, err = con.Read(ctx)
	is.Equal(err, sdk.ErrBackoffRetry)
}

func TestRead_ExpiredIterator(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	gomock.InOrder(
		mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil),
		mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
			Return(&kinesis.GetRecordsOutput{
				Records:           []types.Record{kinesisRecord("5", "k", []byte("first"))},
				NextShardIterator: aws.String("it-2"),
			}, nil),
		mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).
			Return(nil, &types.ExpiredIteratorException{Message: aws.String("Iterator expired")}),
		mockClient.EXPECT().
			GetShardIterator(gomock.Any(), &kinesis.GetShardIteratorInput{
				StreamName:             aws.String("logs"),
				ShardId:                aws.String("shardId-000000000000"),
				ShardIteratorType:      types.ShardIteratorTypeAfterSequenceNumber,
				StartingSequenceNumber: aws.String("5"),
			}).
			Return(&kinesis.GetShardIteratorOutput{ShardIterator: aws.String("it-renewed")}, nil),
	)

	is.NoErr(con.Open(ctx, nil))

	_, err := con.Read(ctx)
	is.NoErr(err)

	_, err = con.Read(ctx)
	is.Equal(err, sdk.ErrBackoffRetry)
	is.Equal(aws.ToString(con.shards[0].iterator), "it-renewed")
}

func TestRead_GetRecordsError(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	throttled := &types.ProvisionedThroughputExceededException{Message: aws.String("Rate exceeded")}
	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	mockClient.EXPECT().GetRecords(gomock.Any(), gomock.Any()).Return(nil, throttled)

	is.NoErr(con.Open(ctx, nil))

	_, err := con.Read(ctx)
	is.True(errors.Is(err, throttled))
	is.Equal(len(con.shards), 1)
}

func TestRead_CancelledContext(t *testing.T) {
	is := is.New(t)

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	cfg["sleep"] = "1h"
	con, mockClient := newTestSource(context.Background(), t, cfg)

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	is.NoErr(con.Open(context.Background(), nil))

	// use up the limiter token so the next poll has to wait
	con.shards[0].limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := con.Read(ctx)
	is.True(errors.Is(err, context.Canceled))
	is.Equal(len(con.shards), 1)
}

func TestTeardown_ReleasesState(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	cfg := testConfig()
	cfg["shards"] = "shardId-000000000000"
	con, mockClient := newTestSource(ctx, t, cfg)

	mockClient.EXPECT().GetShardIterator(gomock.Any(), gomock.Any()).Return(iteratorFor("shardId-000000000000"), nil)
	is.NoErr(con.Open(ctx, nil))

	is.NoErr(con.Teardown(ctx))
	is.Equal(con.client, nil)
	is.Equal(len(con.shards), 0)
	is.Equal(len(con.buffer), 0)
}

func TestAck(t *testing.T) {
	is := is.New(t)
	con := &Source{}

	is.NoErr(con.Ack(context.Background(), sdk.Position("shardId-000000000000_100")))
	is.True(errors.Is(con.Ack(context.Background(), sdk.Position("100")), ErrInvalidPosition))
}
