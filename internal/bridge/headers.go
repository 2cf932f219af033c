package bridge

import (
	"net/http"
	"strings"

	"github.com/idmhub/scim-bridge/models"
)

// ExtractHeaders flattens transport-level headers into a single-valued map.
// Only the first value of each header is kept, matching the transport's
// first-value convention; later duplicates are ignored.
func ExtractHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for name, values := range header {
		if len(values) == 0 {
			continue
		}
		headers[name] = values[0]
	}

	return headers
}

// NormalizeHeaders returns a new header map in which a content-type value
// starting (case-insensitively) with the generic JSON media type has been
// replaced with the SCIM media type. All other entries pass through
// unchanged.
//
// The function is pure and idempotent: the SCIM media type does not itself
// start with "application/json", so a second pass changes nothing.
func NormalizeHeaders(headers map[string]string) map[string]string {
	normalized := make(map[string]string, len(headers))
	for name, value := range headers {
		isContentType := strings.EqualFold(name, models.ContentTypeHeader)
		isGenericJSON := hasPrefixFold(value, models.ContentTypeJSON)
		if isContentType && isGenericJSON {
			value = models.ContentTypeSCIM
		}
		normalized[name] = value
	}

	return normalized
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
