package notion

import "fmt"

// FetchError represents a failed request to the candidate database. Any page
// failure aborts the whole fetch; the client never retries on its own.
type FetchError struct {
	// StatusCode is the HTTP status of the failed request, or 0 for
	// transport-level failures.
	StatusCode int
	// Message is the remote error message when one was returned.
	Message string
	// Err is the underlying transport error, if any.
	Err error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("notion query failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("notion query failed: %s", e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsFetchError reports whether err is a FetchError.
func IsFetchError(err error) bool {
	_, ok := err.(*FetchError)
	return ok
}
