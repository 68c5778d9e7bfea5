package codelink

import (
	"errors"
	"fmt"
)

// ErrClosed is returned for operations abandoned by an explicit Close.
var ErrClosed = errors.New("codelink: client closed")

// ConnectError reports a failed connection attempt: the socket did not open
// or closed again before opening.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("codelink: connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// SendError reports a synchronous write failure on an established socket.
// The remaining commands of the batch were not sent.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("codelink: send: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

// RejectionError reports that the runtime rejected the batch within the
// response window. Reason is the first matching classification; later
// responses in the same window are not reported.
type RejectionError struct {
	// Marker is the matched protocol marker.
	Marker string

	// Reason is the human-readable classification.
	Reason string

	// Response is the response text that matched.
	Response string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("codelink: rejected: %s", e.Reason)
}
