package forecast

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidSymbol
	KindSymbolNotFound
	KindParse
	KindNoForecastData
	KindNetwork
	KindNoMatch
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSymbol:
		return "InvalidSymbol"
	case KindSymbolNotFound:
		return "SymbolNotFound"
	case KindParse:
		return "ParseFailure"
	case KindNoForecastData:
		return "NoForecastData"
	case KindNetwork:
		return "NetworkFailure"
	case KindNoMatch:
		return "NoMatch"
	default:
		return "Unknown"
	}
}

// Error is returned by every stage of the pipeline.
// StatusCode and Reason are only set for KindNetwork failures that got a response.
type Error struct {
	Kind       Kind
	StatusCode int
	Reason     string
	Err        error
}

// Sentinels for errors.Is. The pipeline never returns them directly, so
// callers may modify an *Error obtained with errors.As.
var (
	ErrInvalidSymbol  = &Error{Kind: KindInvalidSymbol}
	ErrSymbolNotFound = &Error{Kind: KindSymbolNotFound}
	ErrParse          = &Error{Kind: KindParse}
	ErrNoForecastData = &Error{Kind: KindNoForecastData}
	ErrNetwork        = &Error{Kind: KindNetwork}
	ErrNoMatch        = &Error{Kind: KindNoMatch}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidSymbol:
		return "symbol must contain at least one character"
	case KindSymbolNotFound:
		return "symbol could not be found"
	case KindParse:
		if e.Err != nil {
			return fmt.Sprintf("page could not be parsed: %v", e.Err)
		}
		return "page could not be parsed"
	case KindNoForecastData:
		return "symbol does not have any forecast data"
	case KindNetwork:
		if e.StatusCode != 0 {
			return fmt.Sprintf("page could not be loaded (status %d, reason %s)", e.StatusCode, e.Reason)
		}
		if e.Err != nil {
			return fmt.Sprintf("page could not be loaded: %v", e.Err)
		}
		return "page could not be loaded"
	case KindNoMatch:
		return "no match found"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown forecast error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so the
// package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
