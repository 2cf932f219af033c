package bridge

import "strings"

// CanonicalQuery serializes a multi-valued query-parameter map into the
// single query string the protocol engine expects.
//
// Repeated values of one name are joined with a comma, distinct names with
// an ampersand, and a non-empty result is prefixed with "?". An empty or nil
// map yields the empty string. No percent-encoding is performed here; any
// encoding is the transport's concern upstream.
//
// Iteration order over names is whatever order the map presents, so callers
// comparing full strings must fix the input to a single entry.
func CanonicalQuery(query map[string][]string) string {
	if len(query) == 0 {
		return ""
	}

	entries := make([]string, 0, len(query))
	for name, values := range query {
		entries = append(entries, name+"="+strings.Join(values, ","))
	}

	return "?" + strings.Join(entries, "&")
}
