package models

// EngineResponse is the structured result produced by the protocol engine
// for one canonical request. The response emitter projects it onto the
// transport without remapping status codes or filtering headers.
type EngineResponse struct {
	// Status is the HTTP status code chosen by the engine.
	Status int

	// Headers are emitted verbatim on the transport response.
	Headers map[string]string

	// Body is the raw response body, usually a SCIM JSON document.
	// Empty means no body is written.
	Body string
}
