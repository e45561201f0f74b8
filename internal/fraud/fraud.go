// Package fraud provides implementations of the fraud gate consulted during
// credit analysis: an HTTP client for the external fraud-check service and an
// in-memory gate for tests and offline runs.
package fraud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Client checks client identifiers against the external fraud service.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
	}
}

// IsFraudulent asks the fraud service about a client. The answer is treated
// as authoritative; any transport failure surfaces as an error because the
// decision cannot be made without it.
func (c *Client) IsFraudulent(ctx context.Context, clientID string) (bool, error) {
	endpoint := c.baseURL + "/check/" + url.PathEscape(clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code %d from fraud service", resp.StatusCode)
	}

	var body struct {
		Fraudulent bool `json:"fraudulent"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decoding response: %w", err)
	}

	return body.Fraudulent, nil
}

// Static is an in-memory gate holding an explicit set of flagged clients.
type Static struct {
	mu      sync.RWMutex
	flagged map[string]struct{}
}

func NewStatic(flagged ...string) *Static {
	s := &Static{flagged: make(map[string]struct{}, len(flagged))}
	for _, id := range flagged {
		s.flagged[id] = struct{}{}
	}

	return s
}

func (s *Static) IsFraudulent(_ context.Context, clientID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.flagged[clientID]

	return ok, nil
}

// Flag marks a client as fraudulent for subsequent checks.
func (s *Static) Flag(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flagged[clientID] = struct{}{}
}
