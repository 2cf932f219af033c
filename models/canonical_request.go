package models

// CanonicalRequest is the transport-agnostic form of one inbound SCIM
// request, ready to be handed to the protocol engine.
//
// It is assembled once per request by the HTTP bridge: the absolute resource
// URL already carries the canonicalized query string, headers have been
// normalized (single value per name, SCIM content type substituted for
// generic JSON), and the caller context has been established by the
// authentication collaborator.
type CanonicalRequest struct {
	// URL is the absolute URL of the targeted resource including the
	// canonicalized query string (empty query contributes nothing).
	URL string

	// Method is the SCIM operation mapped from the HTTP verb.
	Method Method

	// Body is the raw request body. May be empty, never carries meaning to
	// the bridge itself; parsing is entirely the engine's concern.
	Body string

	// Headers maps header names to their first transport-level value,
	// normalized per the SCIM content-type convention. Names never repeat
	// with different casing.
	Headers map[string]string

	// Authorization is the caller context established by the authentication
	// collaborator. Opaque to the bridge; the engine uses it for per-resource
	// authorization decisions.
	Authorization Authorization
}
