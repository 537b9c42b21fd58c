package datosgov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"consultanit/cmd/internal/domain/source"

	"github.com/labstack/gommon/log"
)

const (
	SourceName     = "datos.gov.co"
	DefaultBaseURL = "https://www.datos.gov.co/resource/c82u-588k.json"
)

// Client queries the chambers of commerce registry published on datos.gov.co.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: source.RequestTimeout},
	}
}

func (c *Client) Name() string {
	return SourceName
}

// Query fetches the registry rows for nit and returns the first one.
// No hints are needed by this registry.
func (c *Client) Query(ctx context.Context, nit string, _ source.Hints) (source.Result, error) {
	endpoint, err := c.lookupURL(nit)
	if err != nil {
		return nil, source.NewUnavailable(SourceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, source.NewUnavailable(SourceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("failed to query %s: %v", SourceName, err)
		return nil, source.NewUnavailable(SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err = fmt.Errorf("%s failed with status code: %d", SourceName, resp.StatusCode)
		log.Errorf("failed to query %s: %v", SourceName, err)
		return nil, source.NewUnavailable(SourceName, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Errorf("failed to read %s response for NIT %s: %v", SourceName, nit, err)
		return nil, source.NewUnavailable(SourceName, err)
	}

	var rows []companyResponse
	if err = json.Unmarshal(body, &rows); err != nil {
		log.Errorf("failed to parse %s response for NIT %s: %v", SourceName, nit, err)
		return nil, source.NewUnavailable(SourceName, err)
	}

	if len(rows) == 0 {
		log.Infof("%s has no record for NIT %s", SourceName, nit)
		return nil, nil
	}
	return rows[0].ToResult(), nil
}

func (c *Client) lookupURL(nit string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("nit", nit)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
