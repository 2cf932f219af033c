package models

// Authorization is the caller context produced by the authentication
// collaborator for one request. The bridge threads it through the canonical
// request without interpreting it.
type Authorization struct {
	// Subject is the authenticated principal (JWT "sub" claim).
	Subject string

	// ClientID identifies the OAuth client the token was issued to, when the
	// token carries one.
	ClientID string

	// RealmID is the deployment the caller was authenticated against.
	RealmID string

	// Roles lists the realm roles granted to the caller.
	Roles []string
}
