package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrMalformedLine   = errors.New("malformed line")
)

// Reason classifies a ParseError.
type Reason int

const (
	InvalidQuantity Reason = iota + 1
	MalformedLine
)

func (r Reason) String() string {
	switch r {
	case InvalidQuantity:
		return "InvalidQuantity"
	case MalformedLine:
		return "MalformedLine"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case InvalidQuantity:
		return ErrInvalidQuantity
	case MalformedLine:
		return ErrMalformedLine
	default:
		return nil
	}
}

// ParseError reports the first offending line of a decklist.
type ParseError struct {
	Line    int // 1-based
	Content string
	Reason  Reason
	Err     error // underlying cause, if any
}

func (e *ParseError) Error() string {
	var reason any = e.Reason
	if s := e.Reason.sentinel(); s != nil {
		reason = s
	}
	msg := fmt.Sprintf("line %d: %v: %q", e.Line, reason, e.Content)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	s := e.Reason.sentinel()
	return s != nil && target == s
}

func (e *ParseError) Unwrap() error { return e.Err }
