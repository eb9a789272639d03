package llm

import "fmt"

// AuthError means no usable credential is configured for the generation
// endpoint.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "generation auth error: " + e.Reason
}

// TransportError means the endpoint answered with a non-success status.
// The status code and whatever body text was available are preserved.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generation endpoint error: status=%d body=%s", e.StatusCode, e.Body)
}

// EmptyResponseError means the call succeeded but yielded no textual
// payload.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "generation endpoint returned no content"
}
