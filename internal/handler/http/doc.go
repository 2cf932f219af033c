// Package http implements the HTTP transport layer of the bridge.
//
// It exposes route wiring, the per-request bridging handler, and middleware
// for the SCIM endpoint. Cross-cutting concerns such as authentication,
// request tracing, access logging, and metrics are handled in this package
// before a request is canonicalized and dispatched to the protocol engine.
package http
