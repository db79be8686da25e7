package assert

import (
	"testing"

	"github.com/iov-one/starksig"
	"github.com/iov-one/starksig/errors"
)

var errCause = errors.Register(9200, "cause")

func TestNil(t *testing.T) {
	cases := map[string]struct {
		value    interface{}
		wantFail bool
	}{
		"nil":             {value: nil},
		"typed nil":       {value: (*errors.Error)(nil)},
		"nil slice":       {value: []starksig.Felt(nil)},
		"error":           {value: errCause, wantFail: true},
		"zero felt":       {value: starksig.Felt{}, wantFail: true},
		"non pointer":     {value: 0, wantFail: true},
		"not nil slice":   {value: []starksig.Felt{}, wantFail: true},
		"wrapped nothing": {value: errors.Wrap(nil, "x")},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			Nil(mock, tc.value)
			if mock.failed() != tc.wantFail {
				t.Fatalf("want failure %v, got %d failures", tc.wantFail, mock.fails)
			}
		})
	}
}

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     *errors.Error
		got      error
		wantFail bool
	}{
		"same error":     {want: errCause, got: errCause},
		"wrapped":        {want: errCause, got: errors.Wrap(errCause, "signer at 0")},
		"both nil":       {want: nil, got: nil},
		"nil wanted":     {want: nil, got: errCause, wantFail: true},
		"error wanted":   {want: errCause, got: nil, wantFail: true},
		"different kind": {want: errCause, got: errors.Wrap(errors.ErrNotFound, "x"), wantFail: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.want, tc.got)
			if mock.failed() != tc.wantFail {
				t.Fatalf("want failure %v, got %d failures", tc.wantFail, mock.fails)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	threshold := errors.Field("Threshold", errors.ErrInvalidModel, "threshold 0")

	cases := map[string]struct {
		err      error
		path     string
		want     *errors.Error
		wantFail bool
	}{
		"error of the path": {
			err:  threshold,
			path: "Threshold",
			want: errors.ErrInvalidModel,
		},
		"no error expected and none found": {
			err:  threshold,
			path: "Owners.0",
		},
		"no error expected but one found": {
			err:      threshold,
			path:     "Threshold",
			wantFail: true,
		},
		"wrong kind": {
			err:      threshold,
			path:     "Threshold",
			want:     errors.ErrDuplicate,
			wantFail: true,
		},
		"two errors for one path": {
			err: errors.Append(
				errors.Field("Owners.1", errors.ErrInvalidModel, "zero stark key"),
				errors.Field("Owners.1", errors.ErrInvalidModel, "duplicated owner"),
			),
			path:     "Owners.1",
			want:     errors.ErrInvalidModel,
			wantFail: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			FieldError(mock, tc.err, tc.path, tc.want)
			if mock.failed() != tc.wantFail {
				t.Fatalf("want failure %v, got %d failures", tc.wantFail, mock.fails)
			}
		})
	}
}

func TestVerificationOutcome(t *testing.T) {
	cases := map[string]struct {
		got          starksig.Felt
		err          error
		wantAccepted bool
		wantRejected bool
	}{
		"valid": {
			got:          starksig.Valid,
			wantAccepted: true,
		},
		"rejected with the cause": {
			err:          errors.Wrapf(errCause, "signer at %d", 2),
			wantRejected: true,
		},
		"no error but not the sentinel": {
			got: starksig.FeltFromUint64(1),
		},
		"sentinel returned with an error": {
			got: starksig.Valid,
			err: errCause,
		},
		"rejected with another cause": {
			err: errors.ErrNotFound,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			accepted := &tmock{TB: t}
			Accepted(accepted, tc.got, tc.err)
			if accepted.failed() == tc.wantAccepted {
				t.Errorf("want accepted %v, got %d failures", tc.wantAccepted, accepted.fails)
			}

			rejected := &tmock{TB: t}
			Rejected(rejected, errCause, tc.got, tc.err)
			if rejected.failed() == tc.wantRejected {
				t.Errorf("want rejected %v, got %d failures", tc.wantRejected, rejected.fails)
			}
		})
	}
}

// tmock counts failures instead of stopping the test.
type tmock struct {
	testing.TB
	fails int
}

func (t *tmock) failed() bool { return t.fails > 0 }

func (t *tmock) Fatalf(format string, args ...interface{}) {
	t.TB.Logf(format, args...)
	t.fails++
}
