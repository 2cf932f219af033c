package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/idmhub/scim-bridge/internal/logger"
	"github.com/idmhub/scim-bridge/models"
)

type httpScimClient struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// NewHTTPScimClient constructs an HTTP implementation of [ScimClient] bound
// to one realm's endpoint. address is the bridge's base address (with or
// without scheme); realm selects the endpoint under /realms/{realm}/scim/v2.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPScimClient(address, realm string, timeout time.Duration, logger *logger.Logger) (ScimClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid scim client address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL + "/realms/" + url.PathEscape(realm) + "/scim/v2").
		SetTimeout(timeout)

	return &httpScimClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ScimClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpScimClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ScimClient].
func (h *httpScimClient) Token() string {
	return h.token
}

func (h *httpScimClient) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(models.ContentTypeHeader, models.ContentTypeSCIM).
		SetAuthToken(h.token)
}

// Create implements [ScimClient].
func (h *httpScimClient) Create(ctx context.Context, resourceType, body string) (string, error) {
	resp, err := h.request(ctx).
		SetBody(body).
		Post("/" + resourceType)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Get implements [ScimClient].
func (h *httpScimClient) Get(ctx context.Context, resourceType, id string) (string, error) {
	resp, err := h.request(ctx).
		Get("/" + resourceType + "/" + url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// List implements [ScimClient].
func (h *httpScimClient) List(ctx context.Context, resourceType string, query url.Values) (string, error) {
	resp, err := h.request(ctx).
		SetQueryParamsFromValues(query).
		Get("/" + resourceType)
	if err != nil {
		return "", fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Replace implements [ScimClient].
func (h *httpScimClient) Replace(ctx context.Context, resourceType, id, body string) (string, error) {
	resp, err := h.request(ctx).
		SetBody(body).
		Put("/" + resourceType + "/" + url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("replace request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Patch implements [ScimClient].
func (h *httpScimClient) Patch(ctx context.Context, resourceType, id, body string) (string, error) {
	resp, err := h.request(ctx).
		SetBody(body).
		Patch("/" + resourceType + "/" + url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("patch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Delete implements [ScimClient]. Returns [ErrNotFound] (wrapped) on 404.
func (h *httpScimClient) Delete(ctx context.Context, resourceType, id string) error {
	resp, err := h.request(ctx).
		Delete("/" + resourceType + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}
