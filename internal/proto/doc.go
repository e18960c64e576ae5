// Package proto holds the generated UserService messages and gRPC bindings.
// The source of truth is api/userserver.proto.
package proto

//go:generate sh -c "cd ../.. && buf generate"
