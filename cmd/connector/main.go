package main

import (
	sdk "github.com/conduitio/conduit-connector-sdk"

	kinesis "github.com/crewton/conduit-connector-kinesis"
)

func main() {
	sdk.Serve(kinesis.Connector)
}
