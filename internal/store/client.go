// Package store talks to the backing inventory service over HTTP.
//
// The backing store is the single source of truth for products and
// suppliers. This client only detects success or failure on command paths;
// it never interprets error bodies beyond the status code, and it never
// retries. Timeout policy belongs to the injected http.Client.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ChromaDiv/supply-chain-app/internal/domain"
	"github.com/ChromaDiv/supply-chain-app/internal/record"
)

// Store is the fetch/command surface the coordinator depends on.
type Store interface {
	FetchInventory(ctx context.Context) ([]domain.InventoryItem, error)
	FetchSuppliers(ctx context.Context) ([]domain.Supplier, error)
	Reorder(ctx context.Context, productID int64, quantity int) (domain.ReorderOutcome, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

// Client is the HTTP implementation of Store.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the store at baseURL. A nil httpClient falls
// back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchInventory loads and normalizes the full inventory collection.
func (c *Client) FetchInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	raws, err := c.fetchCollection(ctx, "/inventory")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	return record.Items(raws), nil
}

// FetchSuppliers loads and normalizes the full supplier collection.
func (c *Client) FetchSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	raws, err := c.fetchCollection(ctx, "/suppliers")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	return record.Suppliers(raws), nil
}

// Reorder issues a create-order command. The store answers with an eta, a
// message, or neither; all three shapes are a success.
func (c *Client) Reorder(ctx context.Context, productID int64, quantity int) (domain.ReorderOutcome, error) {
	payload, err := json.Marshal(map[string]any{
		"product_id": productID,
		"quantity":   quantity,
	})
	if err != nil {
		return domain.ReorderOutcome{}, fmt.Errorf("%w: encode request: %v", domain.ErrReorderFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reorder", bytes.NewReader(payload))
	if err != nil {
		return domain.ReorderOutcome{}, fmt.Errorf("%w: %v", domain.ErrReorderFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ReorderOutcome{}, fmt.Errorf("%w: %v", domain.ErrReorderFailed, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ReorderOutcome{}, fmt.Errorf("%w: store returned %s", domain.ErrReorderFailed, resp.Status)
	}

	var outcome domain.ReorderOutcome
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil && err != io.EOF {
		// 2xx with an unreadable body is still a bare success.
		return domain.ReorderOutcome{}, nil
	}
	return outcome, nil
}

// DeleteProduct issues a delete command. Confirmation is the caller's
// precondition; the client does not prompt.
func (c *Client) DeleteProduct(ctx context.Context, productID int64) error {
	url := fmt.Sprintf("%s/products/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeleteFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeleteFailed, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: store returned %s", domain.ErrDeleteFailed, resp.Status)
	}
	return nil
}

func (c *Client) fetchCollection(ctx context.Context, path string) ([]record.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("store returned %s for %s", resp.Status, path)
	}

	// UseNumber keeps unit costs exact until the record layer coerces them
	// into decimals.
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()

	var raws []record.Raw
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	return raws, nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
