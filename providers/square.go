package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const squareVersion = "2024-01-18"

// SquareClient implements CommerceProvider against the Square v2 REST API.
// It is constructed once at startup and is safe for concurrent use.
type SquareClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewSquareClient creates a new SquareClient for the given environment base
// URL and access token.
func NewSquareClient(baseURL, accessToken string) *SquareClient {
	return &SquareClient{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateOrder creates a new order.
func (s *SquareClient) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	if err := s.doRequest(ctx, http.MethodPost, "/v2/orders", req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// UpdateOrder applies an order mutation. The request must carry the order's
// current version; a stale version is rejected by the platform as a conflict.
func (s *SquareClient) UpdateOrder(ctx context.Context, orderID string, req *UpdateOrderRequest) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	path := "/v2/orders/" + url.PathEscape(orderID)
	if err := s.doRequest(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// RetrieveOrder fetches the current order snapshot.
func (s *SquareClient) RetrieveOrder(ctx context.Context, orderID string) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	path := "/v2/orders/" + url.PathEscape(orderID)
	if err := s.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// PayOrder settles an order. Used for zero-total orders, which cannot take a
// payment object.
func (s *SquareClient) PayOrder(ctx context.Context, orderID string, req *PayOrderRequest) (*Order, error) {
	var resp struct {
		Order *Order `json:"order"`
	}
	path := "/v2/orders/" + url.PathEscape(orderID) + "/pay"
	if err := s.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

// CreatePayment charges a single-use source token against an order.
func (s *SquareClient) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	var resp struct {
		Payment *Payment `json:"payment"`
	}
	if err := s.doRequest(ctx, http.MethodPost, "/v2/payments", req, &resp); err != nil {
		return nil, err
	}
	return resp.Payment, nil
}

// CreateInvoice creates a draft (unpublished) invoice from an order.
func (s *SquareClient) CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error) {
	var resp struct {
		Invoice *Invoice `json:"invoice"`
	}
	if err := s.doRequest(ctx, http.MethodPost, "/v2/invoices", req, &resp); err != nil {
		return nil, err
	}
	return resp.Invoice, nil
}

// ListCatalog lists catalog objects of the given comma-separated types.
func (s *SquareClient) ListCatalog(ctx context.Context, cursor, types string) ([]CatalogObject, error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if types != "" {
		q.Set("types", types)
	}
	path := "/v2/catalog/list"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp struct {
		Objects []CatalogObject `json:"objects"`
		Cursor  string          `json:"cursor"`
	}
	if err := s.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Objects, nil
}

// ListLocations lists the seller's locations.
func (s *SquareClient) ListLocations(ctx context.Context) ([]Location, error) {
	var resp struct {
		Locations []Location `json:"locations"`
	}
	if err := s.doRequest(ctx, http.MethodGet, "/v2/locations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

func (s *SquareClient) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Square-Version", squareVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBytes)
	}

	if out != nil {
		if err := json.Unmarshal(respBytes, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
