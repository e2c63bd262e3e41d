// Package client is the typed wrapper over the storefront HTTP API: one
// method per endpoint, each returning a fixed-message error on any non-2xx
// response.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"print-order-server/internal/domain"
)

// UploadFile is one file handed to Upload.
type UploadFile struct {
	Name    string
	Type    string
	Content io.Reader
}

// HealthStatus is the /api/health payload.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Client talks to a print-order server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Health fetches the health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &status, "failed to check server health"); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListOrders fetches every order.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders", nil, &orders, "failed to fetch orders"); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder submits the order fields and returns the stamped record.
func (c *Client) CreateOrder(ctx context.Context, fields map[string]interface{}) (*domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", fields, &order, "failed to create order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches one order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.doJSON(ctx, http.MethodGet, "/api/orders/"+orderID, nil, &order, "failed to fetch order"); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus overwrites an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	var order domain.Order
	body := map[string]string{"status": status}
	if err := c.doJSON(ctx, http.MethodPut, "/api/orders/"+orderID, body, &order, "failed to update order status"); err != nil {
		return nil, err
	}
	return &order, nil
}

// ClearOrders deletes every order.
func (c *Client) ClearOrders(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/orders", nil, nil, "failed to clear orders")
}

// Upload posts the files as a multipart submission and returns the new
// metadata records.
func (c *Client) Upload(ctx context.Context, files []UploadFile) ([]domain.FileMeta, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to upload files: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("failed to upload files: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to upload files: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to upload files: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var records []domain.FileMeta
	if err := c.send(req, &records, "failed to upload files"); err != nil {
		return nil, err
	}
	return records, nil
}

// ListFiles fetches every file metadata record.
func (c *Client) ListFiles(ctx context.Context) ([]domain.FileMeta, error) {
	var records []domain.FileMeta
	if err := c.doJSON(ctx, http.MethodGet, "/api/files", nil, &records, "failed to fetch files"); err != nil {
		return nil, err
	}
	return records, nil
}

// ClearFiles deletes every file and its metadata.
func (c *Client) ClearFiles(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/files", nil, nil, "failed to clear files")
}

// Login checks the admin credential pair and returns the success token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/admin/login", body, &resp, "login failed"); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}, errMsg string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: %w", errMsg, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out, errMsg)
}

func (c *Client) send(req *http.Request, out interface{}, errMsg string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: status %d", errMsg, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return nil
}
