// Command tail runs the kinesis source against a stream and prints every
// record it reads, which is handy to check what the destination wrote.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	sdk "github.com/conduitio/conduit-connector-sdk"
	"github.com/crewton/conduit-connector-kinesis/source"
	"github.com/rs/zerolog"
)

func main() {
	var (
		stream      = flag.String("stream", "", "name of the stream to read")
		region      = flag.String("region", "us-east-1", "AWS region of the stream")
		url         = flag.String("url", "", "endpoint override, e.g. http://localhost:4566 for localstack")
		credentials = flag.String("credentials", "", `"id,secret", a credentials file path, or empty to use the environment`)
		shards      = flag.String("shards", "", "comma separated shards to read, empty for all")
		latest      = flag.Bool("latest", false, "start at the tip of the stream instead of the oldest record")
		decode      = flag.Bool("decode", false, "base64 decode record data written by the kinesis destination")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = logger.WithContext(ctx)

	cfg := map[string]string{
		"streamName":      *stream,
		"aws.region":      *region,
		"aws.url":         *url,
		"credentials":     *credentials,
		"shards":          *shards,
		"startFromLatest": fmt.Sprint(*latest),
		"decodeBase64":    fmt.Sprint(*decode),
	}

	if err := run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("tail failed")
	}
}

func run(ctx context.Context, cfg map[string]string) error {
	src := source.New()
	if err := src.Configure(ctx, cfg); err != nil {
		return err
	}
	if err := src.Open(ctx, nil); err != nil {
		return err
	}
	defer func() {
		_ = src.Teardown(context.Background())
	}()

	for {
		rec, err := src.Read(ctx)
		if errors.Is(err, sdk.ErrBackoffRetry) {
			continue
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s\t%s\t%s\n",
			rec.Metadata[source.MetadataShardID],
			rec.Metadata[source.MetadataSequenceNumber],
			rec.Payload.After.Bytes())

		if err := src.Ack(ctx, rec.Position); err != nil {
			return err
		}
	}
}
