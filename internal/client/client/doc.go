// Package client talks to the account server over gRPC.
//
// GRPCClient keeps the token pair returned by Login, attaches it to every
// outgoing call and, when a call comes back Unauthenticated, refreshes the
// access token once and retries. Status codes are mapped to the sentinel
// errors in errors.go so callers can match them with errors.Is.
package client
