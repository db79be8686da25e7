package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/starksig/errors"
)

func mustCreateFile(t testing.TB, r io.Reader) string {
	t.Helper()

	fd, err := os.Create(filepath.Join(t.TempDir(), "file"))
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	if _, err := io.Copy(fd, r); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}
	return fd.Name()
}

func TestRunCommand(t *testing.T) {
	panicking := func(io.Reader, io.Writer, []string) error {
		panic("boom")
	}
	err := runCommand(panicking, nil, nil, nil)
	if !errors.ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %+v", err)
	}
	if code, log := errors.CodeInfo(err, false); code != 1 || log != "internal error" {
		t.Fatalf("panic cause leaked: %d %q", code, log)
	}

	want := errors.Wrap(errors.ErrNotFound, "account")
	failing := func(io.Reader, io.Writer, []string) error { return want }
	if err := runCommand(failing, nil, nil, nil); err != want {
		t.Fatalf("want %v, got %v", want, err)
	}

	if err := runCommand(cmdVersion, nil, &bytes.Buffer{}, nil); err != nil {
		t.Fatalf("version: %+v", err)
	}
}
