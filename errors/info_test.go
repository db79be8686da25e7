package errors

import (
	"io"
	"strings"
	"testing"
)

func TestCodeInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"nil": {
			err:      nil,
			wantCode: SuccessCode,
			wantLog:  "",
		},
		"typed nil": {
			err:      (*Error)(nil),
			wantCode: SuccessCode,
			wantLog:  "",
		},
		"root error": {
			err:      errRejected,
			wantCode: 9100,
			wantLog:  "rejected",
		},
		"wrapped root error keeps the context": {
			err:      Wrapf(errRejected, "signer at %d", 1),
			wantCode: 9100,
			wantLog:  "signer at 1: rejected",
		},
		"stdlib error is hidden": {
			err:      Wrap(io.ErrUnexpectedEOF, "reading bundle"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"panic is hidden": {
			err:      Wrap(ErrPanic, "runtime error: index out of range"),
			wantCode: 1,
			wantLog:  "internal error",
		},
		"validation errors use the first code": {
			err:      Append(ErrEmpty, ErrNotFound),
			wantCode: ErrEmpty.Code(),
			wantLog:  "2 errors occurred:\n\t* value is empty\n\t* not found\n",
		},
		"custom coder": {
			err:      storageErr{},
			wantCode: 4242,
			wantLog:  "disk full",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := CodeInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want code %d, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want log %q, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestCodeInfoDebug(t *testing.T) {
	code, log := CodeInfo(Wrap(io.ErrUnexpectedEOF, "reading bundle"), true)
	if code != internalCode {
		t.Fatalf("want internal code, got %d", code)
	}
	if !strings.HasPrefix(log, "reading bundle: unexpected EOF\n") || !strings.Contains(log, "errors/info_test.go") {
		t.Fatalf("want the message and a stack trace, got %q", log)
	}
}

// storageErr declares its own code without being registered.
type storageErr struct{}

func (storageErr) Code() uint32 { return 4242 }

func (storageErr) Error() string { return "disk full" }
