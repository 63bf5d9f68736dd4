package transit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StatusError reports an upstream failure: either a non-2xx HTTP status or
// a non-zero StatusCode inside an otherwise successful response body.
type StatusError struct {
	Code    int
	Message string
	// Body is true when Code came from the response payload rather than HTTP.
	Body bool
}

func (e *StatusError) Error() string {
	if e.Body {
		return fmt.Sprintf("upstream status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("Code %d: %s", e.Code, e.Message)
}

// envelope is the status header shared by every SL response.
type envelope struct {
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message"`
}

func (e envelope) err() error {
	if e.StatusCode == 0 {
		return nil
	}
	return &StatusError{Code: e.StatusCode, Message: e.Message, Body: true}
}

// get issues a single GET against path with the api key attached and decodes
// the JSON body into out.
func (p *SLProvider) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey).
		SetQueryParams(params)

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}

	if resp.IsError() {
		return &StatusError{
			Code:    resp.StatusCode(),
			Message: strings.TrimSpace(string(resp.Body())),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// flexString decodes a JSON string or number into a string. The provider is
// inconsistent about quoting identifiers and line numbers.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", string(b))
	}
	*f = flexString(n.String())
	return nil
}
