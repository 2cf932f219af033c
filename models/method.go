package models

import "net/http"

// Method is the fixed set of SCIM operations understood by the protocol
// engine. Inbound HTTP verbs are mapped onto it before dispatch; the engine
// never sees raw HTTP method names.
type Method string

const (
	// MethodCreate corresponds to HTTP POST.
	MethodCreate Method = "CREATE"

	// MethodRetrieve corresponds to HTTP GET (single resource or search).
	MethodRetrieve Method = "RETRIEVE"

	// MethodReplace corresponds to HTTP PUT.
	MethodReplace Method = "REPLACE"

	// MethodPatch corresponds to HTTP PATCH.
	MethodPatch Method = "PATCH"

	// MethodDelete corresponds to HTTP DELETE.
	MethodDelete Method = "DELETE"
)

var httpMethods = map[string]Method{
	http.MethodPost:   MethodCreate,
	http.MethodGet:    MethodRetrieve,
	http.MethodPut:    MethodReplace,
	http.MethodPatch:  MethodPatch,
	http.MethodDelete: MethodDelete,
}

// MethodFromHTTP maps an HTTP verb onto the SCIM operation enumeration.
// The router only forwards the five supported verbs, so an unknown verb is a
// caller contract violation and maps to the zero Method.
func MethodFromHTTP(httpMethod string) Method {
	return httpMethods[httpMethod]
}
