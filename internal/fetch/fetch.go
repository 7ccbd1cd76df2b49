// Package fetch is the outbound HTTP layer shared by every scraper.
//
// The target sites gate their content behind browser-looking requests, so
// each {site, operation} pair carries its own HeaderSet and all traffic goes
// through a cloudflare-bypass transport. Timeouts are uniform: the sites the
// scrapers talk to either answer within a few seconds or not at all.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 10 * time.Second

// HeaderSet is a named header configuration for one site operation.
// Header sets are versioned configuration data, not code: when a site
// changes its anti-scraping posture only the record changes.
type HeaderSet map[string]string

// Doer issues raw GET/POST requests. Scrapers depend on this interface so
// tests can substitute canned responses.
type Doer interface {
	Get(ctx context.Context, url string, headers HeaderSet) ([]byte, error)
	Post(ctx context.Context, url string, headers HeaderSet, body []byte) ([]byte, error)
}

// Client is the resty-backed Doer used in production.
type Client struct {
	http *resty.Client
}

// NewClient creates a Client with the cloudflare bypass transport installed.
func NewClient() *Client {
	c := resty.New()
	c.SetTimeout(defaultTimeout)
	c.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(c.GetClient().Transport)

	return &Client{http: c}
}

// Get fetches url with the given header set and returns the raw body.
func (c *Client) Get(ctx context.Context, url string, headers HeaderSet) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{URL: url, Code: res.StatusCode(), Status: res.Status()}
	}

	return res.Body(), nil
}

// Post sends body to url with the given header set and returns the raw
// response body. The content-type comes from the header set.
func (c *Client) Post(ctx context.Context, url string, headers HeaderSet, body []byte) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(bytes.NewReader(body)).
		Post(url)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &StatusError{URL: url, Code: res.StatusCode(), Status: res.Status()}
	}

	return res.Body(), nil
}

// RequestError is returned when the request never produced a response
// (network failure, timeout, context cancellation).
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is returned on a non-200 response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("invalid status code from %s: %d, value %s", e.URL, e.Code, e.Status)
}
