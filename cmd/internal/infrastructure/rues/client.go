package rues

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"consultanit/cmd/internal/domain/source"

	"github.com/labstack/gommon/log"
)

const (
	SourceName     = "rues.org.co"
	DefaultBaseURL = "https://ruesapi.rues.org.co/WEB2/api/Expediente/DetalleRM"

	// successCode is the codigo_error RUES answers with when the record exists.
	successCode = "0000"
	keyLength   = 12
)

// Client queries the RUES (Registro Único Empresarial y Social) API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: source.RequestTimeout},
	}
}

func (c *Client) Name() string {
	return SourceName
}

// Query looks up the record identified by the chamber code and registration
// number in hints. Without both of them there is nothing to look up, so no
// request is made and an empty result is returned.
func (c *Client) Query(ctx context.Context, nit string, hints source.Hints) (source.Result, error) {
	chamber := strings.TrimSpace(hints.ChamberCode)
	registration := strings.TrimSpace(hints.RegistrationNumber)
	if chamber == "" || registration == "" {
		log.Debugf("skipping %s for NIT %s: chamber code or registration number missing", SourceName, nit)
		return nil, nil
	}

	endpoint := c.baseURL + "/" + url.PathEscape(BuildKey(chamber, registration))
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

	var detail detailResponse
	if err = json.Unmarshal(body, &detail); err != nil {
		log.Errorf("failed to parse %s response for NIT %s: %v", SourceName, nit, err)
		return nil, source.NewUnavailable(SourceName, err)
	}

	if string(detail.ErrorCode) != successCode {
		log.Warnf("%s returned a business error for NIT %s: %s", SourceName, nit, detail.ErrorMessage)
		return nil, nil
	}

	if detail.Record == nil {
		return source.Result{}, nil
	}
	return detail.Record.ToResult(), nil
}

// BuildKey joins the chamber code and the registration number into the
// 12 character RUES key, zero padding between them.
func BuildKey(chamberCode, registrationNumber string) string {
	padding := keyLength - len(chamberCode) - len(registrationNumber)
	if padding < 0 {
		padding = 0
	}
	return chamberCode + strings.Repeat("0", padding) + registrationNumber
}
