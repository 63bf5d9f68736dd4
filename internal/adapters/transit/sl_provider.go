package transit

import (
	"errors"
	"strings"
	"time"

	resty "gopkg.in/resty.v1"
)

const (
	searchPath     = "/typeahead.json"
	departuresPath = "/realtimedeparturesV4.json"

	defaultTimeWindowMinutes = 60
	maxSearchResults         = 10
)

// SLProvider implements TransitProvider against an SL-style realtime API:
// a typeahead stop search and a realtime departures board.
//
// Calls are made once, without retry; the only deadline is the client
// timeout plus whatever the caller's context imposes.
// The provider is safe for concurrent use.
type SLProvider struct {
	client     *resty.Client
	apiKey     string
	timeWindow int
}

func NewSLProvider(apiKey, baseURL string, timeout time.Duration) (*SLProvider, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("transit base url is empty")
	}

	client := resty.New().
		SetHostURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &SLProvider{
		client:     client,
		apiKey:     apiKey,
		timeWindow: defaultTimeWindowMinutes,
	}, nil
}
