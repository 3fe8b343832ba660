package argzx

import (
	"errors"
	"fmt"
)

// ArgumentErrorKind classifies an ArgumentError.
type ArgumentErrorKind string

const (
	ErrInvalidArgumentShape ArgumentErrorKind = "invalid_argument_shape"
	ErrUnrecognizedFlag     ArgumentErrorKind = "unrecognized_flag"
)

// ArgumentError reports why an argv was rejected. Token and Index point at the
// offending position; Index is -1 when the failure concerns the whole list.
type ArgumentError struct {
	Kind   ArgumentErrorKind
	Token  string
	Index  int
	Reason string
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("argzx: %s", e.Kind)
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at %d (%q)", e.Index, e.Token)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// IsKind reports whether err is an *ArgumentError of the given kind.
func IsKind(err error, kind ArgumentErrorKind) bool {
	var ae *ArgumentError
	return errors.As(err, &ae) && ae.Kind == kind
}

func shapeError(reason string) *ArgumentError {
	return &ArgumentError{Kind: ErrInvalidArgumentShape, Index: -1, Reason: reason}
}
