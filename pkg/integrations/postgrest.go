package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mublin/mublin-web/pkg/domain"
)

// RestClient issues read-only queries against the hosted backend's data API
// (PostgREST convention). It exists because the SDK's bundled builder covers
// plain equality reads but not the multi-key ordering, limits and count-only
// embeds the composite gig queries need.
type RestClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type RestConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewRestClient(config RestConfig) (*RestClient, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("data API base URL is required")
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("data API key is required")
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &RestClient{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Filter is one column predicate, e.g. {Column: "slug", Operator: "eq",
// Value: "noite-de-jazz"}.
type Filter struct {
	Column   string
	Operator string
	Value    string
}

// Order is one sort key with direction.
type Order struct {
	Column     string
	Descending bool
}

// Query describes one parameterized selection: nested-relationship expansion
// goes into Select using the backend's embed syntax.
type Query struct {
	Table   string
	Select  string
	Filters []Filter
	Order   []Order
	Limit   int
}

func (q Query) params() url.Values {
	params := url.Values{}
	if q.Select != "" {
		params.Set("select", q.Select)
	}
	for _, f := range q.Filters {
		params.Set(f.Column, f.Operator+"."+f.Value)
	}
	if len(q.Order) > 0 {
		keys := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			key := o.Column
			if o.Descending {
				key += ".desc"
			} else {
				key += ".asc"
			}
			keys = append(keys, key)
		}
		params.Set("order", strings.Join(keys, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

// Execute runs the query and decodes the JSON row set into dest. Transport
// and backend failures wrap domain.ErrFetchFailed so callers can map them to
// the single error view state.
func (c *RestClient) Execute(ctx context.Context, q Query, dest interface{}) error {
	if q.Table == "" {
		return domain.ErrInvalidRequest
	}

	queryURL := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, url.PathEscape(q.Table))
	req, err := http.NewRequestWithContext(ctx, "GET", queryURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = q.params().Encode()
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query %s: %v: %w", q.Table, err, domain.ErrFetchFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("query %s: status %d: %w", q.Table, resp.StatusCode, domain.ErrFetchFailed)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("query %s: decode response: %v: %w", q.Table, err, domain.ErrFetchFailed)
	}

	return nil
}
