package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxGeoResponse bounds how much of a geo response body is read.
const maxGeoResponse = 64 << 10

// ErrGeoLookup is returned when the geo-IP service gives no usable answer.
var ErrGeoLookup = errors.New("geo lookup failed")

type geoResponse struct {
	CountryCode    string `json:"country_code"`
	CountryCodeAlt string `json:"countryCode"`
	Error          bool   `json:"error"`
	Reason         string `json:"reason"`
}

// HTTPGeoLocator implements ports.GeoLocator against an ipapi-style JSON endpoint.
type HTTPGeoLocator struct {
	client  *http.Client
	pattern string
}

// NewHTTPGeoLocator creates a locator. pattern receives the IP through a single %s verb.
func NewHTTPGeoLocator(client *http.Client, pattern string) *HTTPGeoLocator {
	return &HTTPGeoLocator{client: client, pattern: pattern}
}

// CountryCode asks the geo service for the country of ip.
func (l *HTTPGeoLocator) CountryCode(ctx context.Context, ip string) (string, error) {
	endpoint := fmt.Sprintf(l.pattern, url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeoLookup, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGeoResponse))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrGeoLookup, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrGeoLookup, resp.StatusCode)
	}

	var out geoResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeoLookup, err)
	}
	if out.Error {
		return "", fmt.Errorf("%w: %s", ErrGeoLookup, out.Reason)
	}

	code := out.CountryCode
	if code == "" {
		code = out.CountryCodeAlt
	}
	return strings.ToUpper(strings.TrimSpace(code)), nil
}
