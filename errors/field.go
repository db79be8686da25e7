package errors

import (
	"github.com/pkg/errors"
)

// Field attaches a field path to err, for example Threshold or Owners.2.
// It returns nil for a nil err.
func Field(path string, err error, description string) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &fieldError{path: path, desc: description, parent: err}
}

// AppendField adds the error of a field to already collected errors. Both
// may be nil.
func AppendField(collected error, path string, err error) error {
	return Append(collected, Field(path, err, ""))
}

type fieldError struct {
	path   string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return e.path + ": " + e.parent.Error()
	}
	return e.path + ": " + e.desc + ": " + e.parent.Error()
}

func (e *fieldError) Cause() error {
	return e.parent
}

// FieldErrors returns the errors attached to the field path. Searching
// stops at the first match in every branch, so an error of a field that
// wraps another error of the same path is reported once.
func FieldErrors(err error, path string) []error {
	var found []error
	walk(err, func(x error) step {
		if f, ok := x.(*fieldError); ok && f.path == path {
			found = append(found, x)
			return prune
		}
		return descend
	})
	return found
}
