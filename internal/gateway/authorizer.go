// Package gateway holds the HTTP clients for the external services the
// payment workflows depend on: the transfer authorizer and the
// notification dispatcher. Both are modeled as small interfaces so the
// services can be tested against deterministic fakes.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrGatewayUnavailable signals a transport fault or an unexpected
// response from an external gateway.
var ErrGatewayUnavailable = errors.New("gateway unavailable")

// Authorizer decides whether a transfer may proceed.
type Authorizer interface {
	// Authorize returns whether the transfer is authorized. A well-formed
	// rejection (HTTP 403) yields (false, nil); a transport fault or any
	// other unexpected status yields ErrGatewayUnavailable.
	Authorize(ctx context.Context) (bool, error)
}

// HTTPAuthorizer queries a remote authorization endpoint.
type HTTPAuthorizer struct {
	url    string
	client *http.Client
}

// NewHTTPAuthorizer creates an authorizer client for the given endpoint.
func NewHTTPAuthorizer(url string, timeout time.Duration) *HTTPAuthorizer {
	return &HTTPAuthorizer{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Authorize issues the authorization query. The endpoint answers with a
// JSON body whose "status" field is "success" when the transfer is
// authorized.
func (a *HTTPAuthorizer) Authorize(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("%w: decoding response: %v", ErrGatewayUnavailable, err)
		}
		return body.Status == "success", nil
	case resp.StatusCode == http.StatusForbidden:
		// Well-formed rejection, not a fault.
		return false, nil
	default:
		return false, fmt.Errorf("%w: unexpected status %d", ErrGatewayUnavailable, resp.StatusCode)
	}
}
