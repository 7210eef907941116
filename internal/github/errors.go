package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gh "github.com/google/go-github/v68/github"
)

// Errors returned by the directory operations. Callers match them with
// errors.Is; non-success statuses other than rate limiting and not-found
// are reported as *RequestFailedError.
var (
	ErrRateLimited = errors.New("github: rate limit exceeded")
	ErrNotFound    = errors.New("github: user not found")
	ErrNetwork     = errors.New("github: network error")
	ErrDecode      = errors.New("github: malformed response")
)

// RequestFailedError reports a non-success HTTP status.
type RequestFailedError struct {
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("github: request failed with status %d", e.StatusCode)
}

// classify maps an error from the go-github client onto the taxonomy above.
// notFound selects whether a 404 means ErrNotFound or a plain failed request.
func classify(err error, notFound bool) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch status := respErr.Response.StatusCode; {
		case status == http.StatusForbidden || status == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrRateLimited, err)
		case status == http.StatusNotFound && notFound:
			return fmt.Errorf("%w: %w", ErrNotFound, err)
		default:
			return &RequestFailedError{StatusCode: status}
		}
	}

	if isDecodeError(err) {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return true
	case errors.Is(err, io.ErrUnexpectedEOF):
		return true
	}
	return false
}
