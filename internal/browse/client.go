package browse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/invoice"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/models"
)

// Client fetches the order list and order details from the gateway. Each
// call is independent; a failed fetch leaves no client state behind, so the
// caller may simply retry.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchOrders retrieves the full previous-bills listing, newest first.
func (c *Client) FetchOrders(ctx context.Context) ([]*models.OrderSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-orders", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.failure("fetch orders", resp)
	}

	var orders []*models.OrderSummary
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// FetchOrderDetails retrieves one order's customer fields, totals, and line
// items.
func (c *Client) FetchOrderDetails(ctx context.Context, orderID string) (*models.OrderDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get-order-details/"+orderID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch order details: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.failure("fetch order details", resp)
	}

	var details models.OrderDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, fmt.Errorf("decode order details: %w", err)
	}
	// A response without the expected customer fields is an error, not a
	// renderable order.
	if details.CustomerName == "" {
		return nil, fmt.Errorf("order details response is missing customer fields")
	}
	return &details, nil
}

// OrderInvoice fetches one order's detail and rebuilds its invoice document
// for re-rendering.
func (c *Client) OrderInvoice(ctx context.Context, orderID, taxRateLabel string) (*invoice.Document, error) {
	details, err := c.FetchOrderDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return invoice.FromOrderDetails(details, taxRateLabel)
}

func (c *Client) failure(op string, resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("%s: %s (status %d)", op, body.Message, resp.StatusCode)
	}
	return fmt.Errorf("%s: server returned status %d", op, resp.StatusCode)
}
