package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/idmhub/scim-bridge/models"
)

// writeEngineResponse projects the engine's structured response onto the
// transport without altering it: every header verbatim, the exact status
// code, the body byte-for-byte. An empty body writes nothing, so a 204
// stays bodiless.
func writeEngineResponse(w http.ResponseWriter, response models.EngineResponse) {
	for name, value := range response.Headers {
		w.Header().Set(name, value)
	}

	w.WriteHeader(response.Status)

	if response.Body != "" {
		_, _ = w.Write([]byte(response.Body))
	}
}

// scimErrorResponse is the standard SCIM error representation.
type scimErrorResponse struct {
	Schemas []string `json:"schemas"`
	Status  string   `json:"status"`
	Detail  string   `json:"detail,omitempty"`
}

const scimErrorSchema = "urn:ietf:params:scim:api:messages:2.0:Error"

// scimError writes a SCIM error document for transport-level failures the
// engine never saw (disabled endpoint, auth rejection, storage failure).
func scimError(w http.ResponseWriter, status int, detail string) {
	body, err := json.Marshal(scimErrorResponse{
		Schemas: []string{scimErrorSchema},
		Status:  strconv.Itoa(status),
		Detail:  detail,
	})
	if err != nil {
		http.Error(w, detail, status)
		return
	}

	w.Header().Set(models.ContentTypeHeader, models.ContentTypeSCIM)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
