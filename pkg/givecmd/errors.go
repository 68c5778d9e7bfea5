package givecmd

import "fmt"

// ValidationError reports a malformed or missing input on the export unit
// itself. It is never worth retrying.
type ValidationError struct {
	Msg string
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("givecmd: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("givecmd: %s", e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PayloadError reports a failure while building the generated payload,
// typically from the compression capability.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("givecmd: build payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }
