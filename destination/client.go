package destination

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kinesis"
)

//go:generate mockgen -destination=../test/mock_destination_client.go -package=test -mock_names=Client=MockDestinationClient . Client
type Client interface {
	// test connection method
	DescribeStreamSummary(ctx context.Context, params *kinesis.DescribeStreamSummaryInput, optFns ...func(*kinesis.Options)) (*kinesis.DescribeStreamSummaryOutput, error)

	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}
