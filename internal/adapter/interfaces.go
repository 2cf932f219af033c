// Package adapter provides a client for a remote SCIM v2 endpoint served by
// this bridge or any compliant provider.
//
// The primary abstraction is [ScimClient], used by admin and integration
// tooling to drive provisioning operations against a realm's endpoint
// without hand-rolling HTTP calls. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrNotFound] for
// 404, [ErrConflict] for 409).
package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/scim_client_mock.go -package=mock

// ScimClient defines transport-agnostic access to one realm's SCIM endpoint.
// Implementations are responsible for content-type handling, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Resource bodies are raw SCIM JSON documents; the client does not parse
// them beyond error mapping.
type ScimClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if none has been set.
	Token() string

	// Create POSTs a new resource document under the given resource type
	// (e.g. "Users") and returns the server's representation.
	Create(ctx context.Context, resourceType, body string) (string, error)

	// Get retrieves a single resource by id.
	Get(ctx context.Context, resourceType, id string) (string, error)

	// List retrieves resources of one type; query carries standard SCIM
	// parameters such as filter, attributes, startIndex and count.
	List(ctx context.Context, resourceType string, query url.Values) (string, error)

	// Replace PUTs a full resource document over the resource with the
	// given id and returns the server's representation.
	Replace(ctx context.Context, resourceType, id, body string) (string, error)

	// Patch applies a SCIM PatchOp document to the resource with the given
	// id and returns the server's representation.
	Patch(ctx context.Context, resourceType, id, body string) (string, error)

	// Delete removes the resource with the given id. Returns [ErrNotFound]
	// (wrapped) if the resource does not exist.
	Delete(ctx context.Context, resourceType, id string) error
}
