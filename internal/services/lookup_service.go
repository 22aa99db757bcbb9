package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUpstreamUnavailable indicates no response came back from the external
// product-metadata service at all.
var ErrUpstreamUnavailable = errors.New("external product service unavailable")

// LookupResult relays an upstream response. Body and status are passed through
// untouched; the caller decides what to persist, this service never does.
type LookupResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *LookupResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type LookupService struct {
	httpClient *http.Client
	baseURL    string
}

func NewLookupService(baseURL string, timeout time.Duration) *LookupService {
	return &LookupService{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Lookup fetches metadata for a barcode from the upstream service. Any HTTP
// response, 2xx or not, is returned as a LookupResult; a transport failure
// maps to ErrUpstreamUnavailable.
func (s *LookupService) Lookup(barcode string) (*LookupResult, error) {
	endpoint := s.baseURL + "/product/" + url.PathEscape(barcode)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	return &LookupResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
