package assert

import (
	"reflect"
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

// Nil fails the test unless value is nil or a typed nil pointer. Errors
// are printed with their stack trace.
func Nil(t testing.TB, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	if v := reflect.ValueOf(value); isNillable(v.Kind()) && v.IsNil() {
		return
	}
	t.Fatalf("want nil, got %+v", value)
}

func isNillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return true
	}
	return false
}

// Equal fails the test unless want and got are deeply equal.
func Equal(t testing.TB, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// IsErr fails the test unless got wraps the root error want. A nil want
// expects no error.
func IsErr(t testing.TB, want *errors.Error, got error) {
	t.Helper()
	if !want.Is(got) {
		t.Fatalf("want %v error, got %+v", want, got)
	}
}

// FieldError fails the test unless err carries exactly one error for the
// field path and that error wraps want. A nil want expects no error for
// the path.
func FieldError(t testing.TB, err error, path string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, path)
	switch {
	case want == nil && len(found) == 0:
	case want == nil:
		t.Fatalf("want no %s error, got %d: %v", path, len(found), found)
	case len(found) != 1:
		t.Fatalf("want one %s error, got %d: %v", path, len(found), found)
	case !want.Is(found[0]):
		t.Fatalf("want %s error %q, got %q", path, want, found[0])
	}
}

// Accepted fails the test unless a verification returned the Valid felt.
func Accepted(t testing.TB, got starksig.Felt, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("bundle rejected: %+v", err)
	}
	if !got.Equal(starksig.Valid) {
		t.Fatalf("want %s, got %s", starksig.Valid, got)
	}
}

// Rejected fails the test unless a verification returned the zero felt
// together with an error of given cause.
func Rejected(t testing.TB, cause *errors.Error, got starksig.Felt, err error) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %v rejection, bundle accepted", cause)
	}
	if !cause.Is(err) {
		t.Fatalf("want %v rejection, got %+v", cause, err)
	}
	if !got.IsZero() {
		t.Fatalf("rejected bundle returned %s", got)
	}
}
