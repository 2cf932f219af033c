package engine

import (
	"context"
	"fmt"
	"net/http"

	"github.com/idmhub/scim-bridge/models"
)

// scimError is the SCIM error document body returned by the placeholder
// engine. The status is repeated inside the body as required by RFC 7644.
const scimErrorBody = `{"schemas":["urn:ietf:params:scim:api:messages:2.0:Error"],"status":"%d","detail":"%s"}`

// notImplemented is a placeholder [Engine] that answers every operation with
// a SCIM error document and status 501. It lets the server binary start and
// serve the full bridge surface before a real protocol engine is linked in.
type notImplemented struct{}

// NewNotImplemented returns the placeholder engine.
func NewNotImplemented() Engine {
	return notImplemented{}
}

// HandleRequest implements [Engine]. It never touches persistent state, so
// it finalizes with isError=true to keep the unit of work side-effect free.
func (notImplemented) HandleRequest(_ context.Context, request models.CanonicalRequest, finalize FinalizeFunc) (models.EngineResponse, error) {
	response := models.EngineResponse{
		Status: http.StatusNotImplemented,
		Headers: map[string]string{
			models.ContentTypeHeader: models.ContentTypeSCIM,
		},
		Body: fmt.Sprintf(scimErrorBody, http.StatusNotImplemented, "no protocol engine is configured"),
	}

	if err := finalize(response, true); err != nil {
		return models.EngineResponse{}, err
	}

	return response, nil
}
