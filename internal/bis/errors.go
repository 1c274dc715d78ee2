package bis

import "fmt"

// FetchError reports a failed upstream request: transport failures and
// non-2xx responses both collapse into this type so raw transport errors
// never leak to handlers.
type FetchError struct {
	// StatusCode is the upstream HTTP status, or 0 for transport failures.
	StatusCode int
	// Message carries the upstream error detail.
	Message string
}

// Error returns the error message string.
func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("BIS request failed: %s", e.Message)
	}
	return fmt.Sprintf("BIS request failed (%d): %s", e.StatusCode, e.Message)
}

// ParseError reports an unparsable SDMX document. It indicates a contract
// break with the upstream API rather than a caller mistake.
type ParseError struct {
	Err error
}

// Error returns the error message string.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse BIS XML: %v", e.Err)
}

// Unwrap exposes the underlying decoding error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
