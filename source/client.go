package source

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

//go:generate mockgen -destination=../test/mock_source_client.go -package=test -mock_names=Client=MockSourceClient . Client
type Client interface {
	ListShards(ctx context.Context, params *kinesis.ListShardsInput, optFns ...func(*kinesis.Options)) (*kinesis.ListShardsOutput, error)
	GetShardIterator(ctx context.Context, params *kinesis.GetShardIteratorInput, optFns ...func(*kinesis.Options)) (*kinesis.GetShardIteratorOutput, error)
	GetRecords(ctx context.Context, params *kinesis.GetRecordsInput, optFns ...func(*kinesis.Options)) (*kinesis.GetRecordsOutput, error)
}
