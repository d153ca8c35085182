package canvas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/aviklund/canvasmcp"
)

// Interface compliance check.
var _ canvasmcp.API = (*Client)(nil)

// Client implements [canvasmcp.API] over the Canvas REST API. It holds no
// state beyond the configuration set at construction, so a single Client is
// safe for concurrent use.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithLogger sets the client logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout overrides the per-request timeout. Useful in tests.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New creates a Client for the given Canvas base URL (e.g.
// https://canvas.example.edu/api/v1) and access token. Both are required;
// missing values are a configuration error that should halt startup.
func New(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, canvasmcp.ErrMissingBaseURL
	}
	if token == "" {
		return nil, canvasmcp.ErrMissingToken
	}

	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(requestTimeout).
			SetAuthToken(token).
			SetHeader("Content-Type", "application/json"),
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// get issues an authenticated GET against path and decodes the JSON body into
// out. Non-200 statuses and transport failures are returned as
// [canvasmcp.APIError] values.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		c.log.Debug().Str("path", path).Err(err).Msg("transport failure")
		return transportError(err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("request rejected")
		return statusError(resp.StatusCode(), resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &canvasmcp.APIError{Message: fmt.Sprintf("Malformed response from Canvas: %s", err)}
	}
	return nil
}

// statusError maps a non-200 response to the fixed per-status messages.
func statusError(code int, body []byte) *canvasmcp.APIError {
	var msg string
	switch code {
	case http.StatusUnauthorized:
		msg = "Authentication failed. Please check your CANVAS_TOKEN."
	case http.StatusForbidden:
		msg = "Access forbidden. You may not have permission to access this resource."
	case http.StatusNotFound:
		msg = "Resource not found. Please check the course ID or endpoint."
	case http.StatusTooManyRequests:
		msg = "Rate limit exceeded. Please wait a moment and try again."
	default:
		msg = fmt.Sprintf("API request failed with status %d: %s", code, truncate(string(body), maxErrorBody))
	}
	return &canvasmcp.APIError{StatusCode: code, Message: msg}
}

// transportError classifies failures that happened before a response arrived.
// The StatusCode stays zero for all of them.
func transportError(err error) *canvasmcp.APIError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return &canvasmcp.APIError{Message: "Request timed out. Please check your network connection."}
	case isConnectionError(err):
		return &canvasmcp.APIError{Message: "Connection error. Please check your network connection."}
	default:
		return &canvasmcp.APIError{Message: fmt.Sprintf("Request failed: %s", err)}
	}
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// statusOf extracts the HTTP status from err, or zero when err is nil or not
// an APIError. Shaping code uses it to pattern-match expected statuses.
func statusOf(err error) int {
	if apiErr, ok := canvasmcp.AsAPIError(err); ok {
		return apiErr.StatusCode
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func coursePath(courseID int, rest string) string {
	return fmt.Sprintf("/courses/%d%s", courseID, rest)
}

// contextCode builds the composite identifier Canvas uses to scope calendar
// and announcement queries to a course.
func contextCode(courseID int) string {
	return fmt.Sprintf("course_%d", courseID)
}

// courseIDFromContextCode parses the trailing integer out of a context code
// like "course_42". It returns zero when no integer is present.
func courseIDFromContextCode(code string) int {
	idx := strings.LastIndexByte(code, '_')
	if idx < 0 {
		return 0
	}
	id, err := strconv.Atoi(code[idx+1:])
	if err != nil {
		return 0
	}
	return id
}
