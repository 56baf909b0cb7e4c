// Package synofoto is a thin client for the Synology Photos web API.
// Every operation is a single HTTP GET translated to a decoded payload
// or an *APIError.
package synofoto

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	"github.com/synotag/synotag/internal/log"
	"github.com/synotag/synotag/internal/synotag/errors"
)

// Vendor API endpoints. All requests go through one of the three
// Synology webapi CGI entry points.
const (
	authEndpoint  = "webapi/auth.cgi"
	queryEndpoint = "webapi/query.cgi"
	entryEndpoint = "webapi/entry.cgi"
)

// The vendor paginates list responses; the client always requests a
// single fixed-size page.
const (
	listOffset = 0
	listLimit  = 100
)

type Creds struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// Client talks to a single Synology Photos installation. Sid is set by
// Login and passed as the _sid query parameter on authenticated calls.
type Client struct {
	URL   string
	Creds *Creds
	Sid   string
	HTTP  *req.Client
}

// New creates an unauthenticated client for the given base URL.
// Unauthenticated clients can still query API information.
func New(url string) (*Client, error) {
	if url == "" {
		return nil, errors.ErrEmptyURL
	}
	return &Client{
		URL:  strings.TrimRight(url, "/"),
		HTTP: createOptimizedClient(),
	}, nil
}

// Init creates a client and logs in with the given credentials.
func Init(url string, creds *Creds) (*Client, error) {
	if creds == nil {
		return nil, errors.ErrInvalidCredentials
	}
	c, err := New(url)
	if err != nil {
		return nil, err
	}
	c.Creds = creds
	if err := c.Login(); err != nil {
		return nil, err
	}
	return c, nil
}

// createOptimizedClient creates an HTTP client with optimal performance settings
func createOptimizedClient() *req.Client {
	client := req.C().
		SetUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/110.0").
		SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // G402: NAS installations commonly use self-signed certs
			MinVersion:         tls.VersionTLS12,
		}).
		SetTimeout(30 * time.Second).
		EnableKeepAlives()

	transport := client.GetTransport()
	if transport != nil {
		transport.SetMaxIdleConns(100).
			SetIdleConnTimeout(90 * time.Second).
			SetMaxConnsPerHost(10)
	}

	return client
}

// APIError is the single error kind for vendor-level failures: a non-200
// HTTP response (Status set) or a success=false envelope (Code set to the
// vendor error code).
type APIError struct {
	Op     string
	Status int
	Code   int
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: request ended with %d status", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: API error code %d", e.Op, e.Code)
}

// apiResponse is the envelope every vendor endpoint wraps its payload in.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiErrorBody   `json:"error"`
}

type apiErrorBody struct {
	Code int `json:"code"`
}

// get handles common request logic: issue the GET, validate the HTTP
// status, check the vendor success flag, and unmarshal data into out.
func (c *Client) get(op, endpoint string, params map[string]string, out any) error {
	if c == nil || c.HTTP == nil {
		return fmt.Errorf("synofoto client is not initialized")
	}

	var urlBuilder strings.Builder
	urlBuilder.Grow(len(c.URL) + len(endpoint) + 1)
	urlBuilder.WriteString(c.URL)
	urlBuilder.WriteString("/")
	urlBuilder.WriteString(endpoint)
	fullURL := urlBuilder.String()

	log.DebugH3("Making GET request to: %s (%s)", fullURL, op)

	resp, err := c.HTTP.R().SetQueryParams(params).Get(fullURL)
	if err != nil {
		log.Error("GET request failed for %s: %v", fullURL, err)
		return fmt.Errorf("GET request failed for %s: %w", fullURL, err)
	}

	if resp.StatusCode != 200 {
		log.Error("GET request returned status %d for %s: %s", resp.StatusCode, fullURL, resp.String())
		return &APIError{Op: op, Status: resp.StatusCode}
	}

	var envelope apiResponse
	if err := resp.UnmarshalJson(&envelope); err != nil {
		log.Error("Failed to unmarshal JSON response from %s: %v", fullURL, err)
		return fmt.Errorf("error unmarshal json: %w, %s", err, resp.String())
	}

	if !envelope.Success {
		apiErr := &APIError{Op: op}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
		}
		log.Error("%s failed: API error code %d", op, apiErr.Code)
		return apiErr
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("error unmarshal data payload: %w, %s", err, string(envelope.Data))
		}
	}

	log.DebugH3("GET request successful for: %s (%s)", fullURL, op)
	return nil
}
