// Package client is the data-access helper UI screens use to call the API:
// one JSON request wrapper with uniform error normalization, plus a typed
// method per endpoint.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/everafter/gallery-backend/internal/models"
)

// APIError is any non-2xx response, normalized. Message and Errors come from
// the server's {message, errors?} body when it parses, the raw body otherwise.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []models.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var parsed models.APIError
		if json.Unmarshal(raw, &parsed) == nil && parsed.Message != "" {
			apiErr.Message = parsed.Message
			apiErr.Errors = parsed.Errors
		} else {
			apiErr.Message = string(raw)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) AdminLogin(username, password string) (*models.AdminLoginResponse, error) {
	var resp models.AdminLoginResponse
	req := models.AdminLoginRequest{Username: username, Password: password}
	if err := c.do(http.MethodPost, "/api/admin/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CustomerLogin(username, password string) (*models.CustomerLoginResponse, error) {
	var resp models.CustomerLoginResponse
	req := models.CustomerLoginRequest{Username: username, Password: password}
	if err := c.do(http.MethodPost, "/api/customer/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListCustomers() ([]models.CustomerWithStats, error) {
	var customers []models.CustomerWithStats
	if err := c.do(http.MethodGet, "/api/admin/customers", nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *Client) CreateCustomer(req models.CreateCustomerRequest) (*models.Customer, error) {
	var resp models.CreateCustomerResponse
	if err := c.do(http.MethodPost, "/api/admin/customers", req, &resp); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

func (c *Client) UpdateCustomer(id uint, req models.UpdateCustomerRequest) (*models.Customer, error) {
	var resp models.UpdateCustomerResponse
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/admin/customers/%d", id), req, &resp); err != nil {
		return nil, err
	}
	return resp.Customer, nil
}

func (c *Client) DeactivateCustomer(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/customers/%d", id), nil, nil)
}

func (c *Client) GetSettings(customerID uint) (*models.CustomerSettings, error) {
	var settings models.CustomerSettings
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/customer/%d/settings", customerID), nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (c *Client) UpdateSettings(customerID uint, req models.UpdateSettingsRequest) (*models.CustomerSettings, error) {
	var resp models.UpdateSettingsResponse
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/customer/%d/settings", customerID), req, &resp); err != nil {
		return nil, err
	}
	return resp.Settings, nil
}

func (c *Client) UpdateStats(customerID uint, req models.UpdateStatsRequest) (*models.UsageStats, error) {
	var resp models.UpdateStatsResponse
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/customer/%d/stats", customerID), req, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

func (c *Client) GetProfile(customerID uint) (*models.CustomerProfile, error) {
	var profile models.CustomerProfile
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/customer/%d/profile", customerID), nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) ListGalleries(customerID uint) ([]models.WeddingGallery, error) {
	var galleries []models.WeddingGallery
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/customer/%d/galleries", customerID), nil, &galleries); err != nil {
		return nil, err
	}
	return galleries, nil
}

func (c *Client) GetGalleryBySlug(slug string) (*models.WeddingGallery, error) {
	var gallery models.WeddingGallery
	if err := c.do(http.MethodGet, "/api/gallery/"+slug, nil, &gallery); err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (c *Client) CreateGallery(customerID uint, req models.CreateGalleryRequest) (*models.WeddingGallery, error) {
	var gallery models.WeddingGallery
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/customer/%d/galleries", customerID), req, &gallery); err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (c *Client) UpdateGallery(id uint, req models.UpdateGalleryRequest) (*models.WeddingGallery, error) {
	var gallery models.WeddingGallery
	if err := c.do(http.MethodPut, fmt.Sprintf("/api/galleries/%d", id), req, &gallery); err != nil {
		return nil, err
	}
	return &gallery, nil
}

func (c *Client) DeleteGallery(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/galleries/%d", id), nil, nil)
}
