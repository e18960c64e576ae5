// Package cli provides the interactive command-line client for the account
// server.
//
// It wires configuration, the gRPC client and a small REPL. Typical flow:
// register, login, then browse accounts or edit your own profile. The token
// pair obtained at login is kept in memory only and refreshed on demand.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
