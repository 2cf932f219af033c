package models

// Protocol constants shared by the bridge and its collaborators.
const (
	// ContentTypeHeader is the canonical name of the content-type header.
	ContentTypeHeader = "Content-Type"

	// ContentTypeSCIM is the SCIM media type (RFC 7644). Every response of
	// the endpoint carries it, and inbound generic-JSON content types are
	// rewritten to it before dispatch.
	ContentTypeSCIM = "application/scim+json"

	// ContentTypeJSON is the generic JSON media-type prefix recognized on
	// inbound requests.
	ContentTypeJSON = "application/json"
)
