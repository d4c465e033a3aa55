package yml

import (
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and stable matching in
// caller code).
const (
	CodeTooLong       = "too_long"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeRequired      = "required"
	CodeParseError    = "parse_error"
	CodeTruncated     = "truncated"
)

// ValidationError reports a field assignment that failed a check. It is the
// only error kind produced by entity constructors, raised at the point the
// offending value is assigned.
type ValidationError struct {
	Field   string // field the value was assigned to
	Code    string // one of the codes listed above
	Message string // user-facing, lists the allowed values/range
	Got     any    // the offending value
	Allowed []string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseError reports structural problems while decoding: an unknown offer
// type discriminant or a malformed/truncated event stream.
type ParseError struct {
	Code    string
	Message string
}

func (e *ParseError) Error() string { return e.Message }

func errTooLong(field, got string, max int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeTooLong,
		Got:     got,
		Message: fmt.Sprintf("the maximum %s length is %d characters", field, max),
	}
}

func errInvalidEnum(field string, got any, allowed []string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidEnum,
		Got:     got,
		Allowed: allowed,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
	}
}

func errNumericOrEnum(field string, got any, allowed []string) *ValidationError {
	msg := fmt.Sprintf("%s must be a number", field)
	if len(allowed) > 0 {
		msg += " or one of: " + strings.Join(allowed, ", ")
	}
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidType,
		Got:     got,
		Allowed: allowed,
		Message: msg,
	}
}

func errNotBoolish(field string, got any, trueTokens, falseTokens []string) *ValidationError {
	allowed := append(append([]string{}, trueTokens...), falseTokens...)
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidEnum,
		Got:     got,
		Allowed: allowed,
		Message: fmt.Sprintf("%s must be a bool or one of: %s", field, strings.Join(allowed, ", ")),
	}
}

func errNotInt(field string, got any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidType,
		Got:     got,
		Message: fmt.Sprintf("the %s parameter only can be int", field),
	}
}

func errOutOfRange(field string, got, lo, hi int) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Got:     got,
		Message: fmt.Sprintf("%s must be between %d and %d", field, lo, hi),
	}
}

func errBadDatetime(field, got, primary, fallback string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Got:     got,
		Allowed: []string{primary, fallback},
		Message: fmt.Sprintf("%s must match %q or %q", field, primary, fallback),
	}
}

func errRequired(field string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Code:    CodeRequired,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func errUnknownOfferType(got string) *ParseError {
	return &ParseError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("got unexpected offer type: %s", got),
	}
}

func errTruncated(tag string) *ParseError {
	return &ParseError{
		Code:    CodeTruncated,
		Message: fmt.Sprintf("event stream ended inside <%s>", tag),
	}
}

func errUnbalanced(tag string) *ParseError {
	return &ParseError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("closing event for <%s> without a matching opening event", tag),
	}
}
