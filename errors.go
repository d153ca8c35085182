package canvasmcp

import "errors"

// Configuration errors returned at construction time. Both are fatal: the
// server refuses to start without a base URL and token.
var (
	ErrMissingBaseURL = errors.New("CANVAS_BASE_URL environment variable is required")
	ErrMissingToken   = errors.New("CANVAS_TOKEN environment variable is required")
)

// APIError describes a failed Canvas API call. StatusCode carries the HTTP
// status for upstream rejections and is zero for transport-level failures
// (timeout, connection error, anything before a response arrived). Callers
// that treat specific statuses as expected outcomes match on StatusCode by
// equality, never on the rendered message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// AsAPIError unwraps err into an *APIError. It returns nil, false for nil
// errors and for errors of any other type.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
