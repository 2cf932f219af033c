// Package server wires and runs the bridge's HTTP server.
//
// It owns the server lifecycle: startup, POSIX signal handling, and graceful
// shutdown with a bounded drain period.
package server
