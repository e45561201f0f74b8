// Package source implements the client for the external order API the sync
// job polls. Unreachability and gateway failures are reported as
// order.ErrTimeout so the job can recover by aborting the pass.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/ricardomaia/credo/internal/order"
)

type Client struct {
	client  *http.Client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type itemPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

type orderPayload struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Status     order.Status  `json:"status"`
	Items      []itemPayload `json:"items"`
}

func (p orderPayload) toOrder() *order.Order {
	o := order.New(p.ID, p.CustomerID, p.Status)

	items := make([]order.Item, len(p.Items))
	for i, item := range p.Items {
		items[i] = order.Item{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Description: item.Description,
		}
	}

	o.SetItems(items)

	return o
}

// FetchPending returns the orders waiting on the external side.
func (c *Client) FetchPending(ctx context.Context) ([]*order.Order, error) {
	var payloads []orderPayload

	if err := c.get(ctx, "/orders/pending", &payloads); err != nil {
		return nil, fmt.Errorf("fetching pending orders: %w", err)
	}

	orders := make([]*order.Order, len(payloads))
	for i, p := range payloads {
		orders[i] = p.toOrder()
	}

	return orders, nil
}

func (c *Client) GetByID(ctx context.Context, id string) (*order.Order, error) {
	var payload orderPayload

	if err := c.get(ctx, "/orders/"+url.PathEscape(id), &payload); err != nil {
		return nil, fmt.Errorf("fetching order %s: %w", id, err)
	}

	return payload.toOrder(), nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	body, err := json.Marshal(map[string]order.Status{"status": status})
	if err != nil {
		return fmt.Errorf("encoding status: %w", err)
	}

	endpoint := c.baseURL + "/orders/" + url.PathEscape(id) + "/status"

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("updating order %s status: %w", id, classify(err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("updating order %s status: %w", id, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// classify maps transport-level failures to ErrTimeout; anything else passes
// through untouched.
func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %s", order.ErrTimeout, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", order.ErrTimeout, err)
	}

	return err
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return order.ErrNotFound
	}

	// The source being down is indistinguishable from it timing out as far
	// as the sync pass is concerned.
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status code %d", order.ErrTimeout, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	return nil
}
