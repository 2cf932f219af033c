// Package bridge implements the request-bridging core of the SCIM plugin:
// canonicalization of inbound transport data (headers, query string) into
// the form the protocol engine expects, the single dispatch into the engine,
// and the commit-or-rollback finalization of the per-request unit of work.
//
// Everything in this package is synchronous; the only blocking point is the
// dispatcher's call into the engine.
package bridge
