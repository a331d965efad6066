package gateway

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Notifier reports whether the downstream notification service can take
// deliveries right now.
type Notifier interface {
	// CheckAvailability returns true when the notification service is
	// reachable. Faults are never escalated; an unreachable or failing
	// service simply reads as unavailable.
	CheckAvailability(ctx context.Context) bool
}

// HTTPNotifier queries a remote notification endpoint.
type HTTPNotifier struct {
	url    string
	client *http.Client
}

// NewHTTPNotifier creates a notifier client for the given endpoint.
func NewHTTPNotifier(url string, timeout time.Duration) *HTTPNotifier {
	return &HTTPNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// CheckAvailability treats any 2xx answer as reachable and everything
// else, transport faults included, as unreachable.
func (n *HTTPNotifier) CheckAvailability(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.url, nil)
	if err != nil {
		log.Printf("notifier request error: %v", err)
		return false
	}

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("notifier unreachable: %v", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
