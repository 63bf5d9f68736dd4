package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"transit-items-service/internal/api/dto"

	resty "gopkg.in/resty.v1"
)

const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx response from the server. Message carries the
// server's own explanation when the body was a structured error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client talks to the items and bus lookup API.
// It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", baseURL, err)
	}

	hc := resty.New().
		SetHostURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		hc.SetTimeout(timeout)
	}

	return &Client{http: hc}, nil
}

func (c *Client) Health(ctx context.Context) (dto.HealthResponse, error) {
	var out dto.HealthResponse
	err := c.do(ctx, http.MethodGet, "/health", nil, &out)
	return out, err
}

func (c *Client) ListItems(ctx context.Context) ([]dto.ItemResponse, error) {
	var out []dto.ItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/items", nil, &out); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return out, nil
}

func (c *Client) CreateItem(ctx context.Context, name, description string) (dto.ItemResponse, error) {
	var out dto.ItemResponse
	body := dto.ItemRequest{Name: name, Description: description}
	if err := c.do(ctx, http.MethodPost, "/api/items", body, &out); err != nil {
		return out, fmt.Errorf("create item: %w", err)
	}
	return out, nil
}

func (c *Client) DeleteItem(ctx context.Context, id int) error {
	if err := c.do(ctx, http.MethodDelete, "/api/items/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	return nil
}

// LookupBuses returns the next departures for the stop best matching stopName.
func (c *Client) LookupBuses(ctx context.Context, stopName string) (dto.BusStopResponse, error) {
	var out dto.BusStopResponse
	if err := c.do(ctx, http.MethodGet, "/api/buses/"+url.PathEscape(stopName), nil, &out); err != nil {
		return out, fmt.Errorf("lookup buses %q: %w", stopName, err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}

	if resp.IsError() {
		apiErr := &APIError{Status: resp.StatusCode()}
		var eb dto.ErrorResponse
		if json.Unmarshal(resp.Body(), &eb) == nil {
			apiErr.Message = eb.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
