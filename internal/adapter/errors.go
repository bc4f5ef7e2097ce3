package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyAddress    = errors.New("empty address")
	ErrNilRequest      = errors.New("nil generation request")
	ErrUndecodableBody = errors.New("response body is not a valid envelope")
	ErrUnhealthy       = errors.New("generation service is unhealthy")
)

// TransportError reports that no usable envelope came back: the request
// failed on the network, or the service answered with a non-2xx status and
// a body that could not be decoded.
type TransportError struct {
	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("generation service unreachable: %v", e.Err)
	}
	return fmt.Sprintf("generation service returned HTTP %d %s: %v",
		e.StatusCode, http.StatusText(e.StatusCode), e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
