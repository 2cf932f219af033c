package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/models"
)

func newTestClient(t *testing.T, serverURL string) *httpScimClient {
	t.Helper()

	c, err := NewHTTPScimClient(serverURL, "master", 0, logger.Nop())
	require.NoError(t, err)

	client := c.(*httpScimClient)
	client.SetToken("test-token")
	return client
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets http scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "https://idp.example.com/", want: "https://idp.example.com"},
		{name: "empty address", raw: "  ", wantErr: true},
		{name: "scheme without host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreate_Success(t *testing.T) {
	created := `{"id":"7","userName":"bob"}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/realms/master/scim/v2/Users", r.URL.Path)
		assert.Equal(t, models.ContentTypeSCIM, r.Header.Get(models.ContentTypeHeader))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set(models.ContentTypeHeader, models.ContentTypeSCIM)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(created))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	got, err := c.Create(context.Background(), "Users", `{"userName":"bob"}`)

	require.NoError(t, err)
	assert.JSONEq(t, created, got)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"no such user"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	_, err := c.Get(context.Background(), "Users", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_QueryParameters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/realms/master/scim/v2/Users", r.URL.Path)
		assert.Equal(t, `userName eq "bob"`, r.URL.Query().Get("filter"))

		_, _ = w.Write([]byte(`{"totalResults":0,"Resources":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	got, err := c.List(context.Background(), "Users", url.Values{"filter": {`userName eq "bob"`}})

	require.NoError(t, err)
	assert.Contains(t, got, "totalResults")
}

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/realms/master/scim/v2/Users/42", r.URL.Path)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	require.NoError(t, c.Delete(context.Background(), "Users", "42"))
}

func TestDelete_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	assert.ErrorIs(t, c.Delete(context.Background(), "Users", "42"), ErrUnauthorized)
}
