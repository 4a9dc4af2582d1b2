// Package proto holds the wire definitions for the agent runner service.
// Generated stubs land under proto/runner/v1 and are not committed.
package proto

//go:generate protoc --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. runner/v1/runner.proto
