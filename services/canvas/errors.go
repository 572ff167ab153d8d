package canvas

import (
	"errors"
	"fmt"
)

// ErrPaginationLimit is returned when a collection still advertises a next
// page after the configured maximum number of pages has been fetched.
var ErrPaginationLimit = errors.New("canvas: pagination limit exceeded")

// RemoteError reports a failed Canvas API call: a non-2xx response
// (StatusCode set) or a transport/decode failure (Err set). The bearer token
// never appears in the message.
type RemoteError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("canvas: GET %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("canvas: GET %s returned status %d", e.URL, e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
