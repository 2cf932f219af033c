package engine

import (
	"context"
	"net/http"
	"testing"

	"github.com/idmhub/scim-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotImplemented_Returns501SCIMError(t *testing.T) {
	eng := NewNotImplemented()

	response, err := eng.HandleRequest(context.Background(), models.CanonicalRequest{Method: models.MethodCreate},
		func(models.EngineResponse, bool) error { return nil })

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, response.Status)
	assert.Equal(t, models.ContentTypeSCIM, response.Headers[models.ContentTypeHeader])
	assert.Contains(t, response.Body, "urn:ietf:params:scim:api:messages:2.0:Error")
	assert.Contains(t, response.Body, "501")
}

func TestNotImplemented_FinalizesWithRollback(t *testing.T) {
	eng := NewNotImplemented()

	var finalized, isError bool
	_, err := eng.HandleRequest(context.Background(), models.CanonicalRequest{},
		func(_ models.EngineResponse, e bool) error {
			finalized = true
			isError = e
			return nil
		})

	require.NoError(t, err)
	assert.True(t, finalized)
	assert.True(t, isError)
}
