package kinesis

import (
	sdk "github.com/conduitio/conduit-connector-sdk"
)

// version is set during the build process with ldflags (see Makefile).
// Default version matches default from runtime/debug.
var version = "(devel)"

// Specification returns the connector's specification.
func Specification() sdk.Specification {
	return sdk.Specification{
		Name:        "kinesis",
		Summary:     "A Conduit Connector that reads events from and writes events to an AWS Kinesis Data Stream",
		Description: "The source polls the configured shards of a stream and emits one record per Kinesis record. The destination puts every record into a stream and partition key resolved from %{field} templates, base64 encoding the payload.",
		Version:     version,
		Author:      "Crewton",
	}
}
