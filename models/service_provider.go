package models

import "time"

// ServiceProvider is the per-realm configuration record controlling whether
// the SCIM endpoint is active for that deployment. The bridge only ever
// reads it; administration of the record belongs to a separate surface.
//
// A realm without a record is treated as enabled (default-permit).
type ServiceProvider struct {
	// RealmID is the deployment this record belongs to.
	RealmID string `json:"realm_id"`

	// Enabled gates the whole SCIM endpoint for the realm. When false every
	// SCIM request is answered with not-found before any engine work.
	Enabled bool `json:"enabled"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"created_at"`

	// LastModified is updated whenever the record changes.
	LastModified time.Time `json:"last_modified"`
}
