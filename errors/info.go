package errors

import "fmt"

const (
	// SuccessCode is reported for a nil error.
	SuccessCode uint32 = 0

	internalCode uint32 = 1
	internalLog         = "internal error"
)

// CodeInfo returns the code and the message to show to the caller of a
// failed operation. Errors that do not wrap a root error, and recovered
// panics, are reported with code 1 and a generic message unless debug is
// set. In debug mode the message carries the full stack trace.
func CodeInfo(err error, debug bool) (uint32, string) {
	code := errCode(err)
	if code == SuccessCode {
		return SuccessCode, ""
	}
	if debug {
		return code, fmt.Sprintf("%+v", err)
	}
	if code == internalCode || ErrPanic.Is(err) {
		return internalCode, internalLog
	}
	return code, err.Error()
}

type coder interface {
	Code() uint32
}

// errCode returns the code of the first error in the chain that declares
// one.
func errCode(err error) uint32 {
	if isNilErr(err) {
		return SuccessCode
	}
	code := internalCode
	walk(err, func(x error) step {
		if c, ok := x.(coder); ok {
			code = c.Code()
			return halt
		}
		return descend
	})
	return code
}
