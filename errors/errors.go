package errors

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when a stored owner set or another record
	// does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrInvalidModel is returned when an owner set configuration cannot
	// be accepted.
	ErrInvalidModel = Register(5, "invalid model")

	// ErrDuplicate is returned when an account is declared twice.
	ErrDuplicate = Register(6, "duplicate")

	// ErrEmpty is returned when a required value is missing.
	ErrEmpty = Register(9, "value is empty")

	// ErrInvalidState is returned when a component is used before it was
	// fully configured.
	ErrInvalidState = Register(10, "invalid state")

	// ErrInvalidInput stands for malformed felts, keys and documents.
	ErrInvalidInput = Register(14, "invalid input")

	// ErrOverflow is returned when a number does not fit in a field
	// element.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(17, "database")

	// ErrIteratorDone is returned by an iterator that has no more entries.
	ErrIteratorDone = Register(18, "iterator done")

	// ErrPanic is set only by Recover.
	ErrPanic = Register(111222, "panic")
)

// registered maps every declared code to its root error. Code 0 means
// success and 1 is kept for errors that are not declared here.
var registered = map[uint32]*Error{
	SuccessCode:  {code: SuccessCode, desc: "success"},
	internalCode: {code: internalCode, desc: internalLog},
}

// Register declares a root error. Codes are stable and must be unique, a
// second registration of the same code panics. Call it only from package
// level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registered[code]; ok {
		panic(fmt.Sprintf("error code %d is taken by %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registered[code] = e
	return e
}

// Error is a root error. Errors created at runtime wrap exactly one root
// error, which a caller can test with Is and report with its code.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	return e.desc
}

// Code returns the stable numeric code of this root error.
func (e *Error) Code() uint32 {
	return e.code
}

// Is returns true if err is this root error or wraps it. A multi error
// matches when any of its members does. A nil root error matches only a
// nil error.
func (e *Error) Is(err error) bool {
	if e == nil {
		return isNilErr(err)
	}
	return walk(err, func(x error) step {
		if root, ok := x.(*Error); ok && root == e {
			return halt
		}
		return descend
	})
}

// Wrap adds a description to err and returns nil for a nil err. The first
// wrap of an error records the stack trace.
//
// Errors that do not wrap a root error are reported as internal errors.
func Wrap(err error, description string) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format supports the following verbs:
//
//	%s  the message
//	%v  the message followed by [file:line] of where the error was created
//	%+v the message followed by the full stack trace
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb != 'v' {
		io.WriteString(s, e.Error())
		return
	}
	st := trimInternal(stackTrace(e))
	if s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", e.Error(), st)
		return
	}
	io.WriteString(s, e.Error())
	if len(st) > 0 {
		writeSimpleFrame(s, st[0])
	}
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

// step tells walk how to continue after visiting an error.
type step int

const (
	descend step = iota // visit the errors wrapped by this one
	prune               // skip the errors wrapped by this one
	halt                // stop walking
)

// walk visits err and the errors it wraps, depth first. Multi errors branch
// into their members. It returns true if fn halted the walk.
func walk(err error, fn func(error) step) bool {
	for !isNilErr(err) {
		switch fn(err) {
		case halt:
			return true
		case prune:
			return false
		}

		switch e := err.(type) {
		case multiErr:
			for _, member := range e {
				if walk(member, fn) {
					return true
				}
			}
			return false
		case causer:
			err = e.Cause()
		default:
			return false
		}
	}
	return false
}

// isNilErr returns true for nil and for typed nil pointers.
func isNilErr(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
