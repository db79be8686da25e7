package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace recorded in the chain of err.
func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	walk(err, func(x error) step {
		if t, ok := x.(stackTracer); ok {
			st = t.StackTrace()
			return halt
		}
		return descend
	})
	return st
}

const pkgPath = "github.com/iov-one/starksig/errors"

// constructors create an error on behalf of their caller and are cut from
// the top of a stack trace.
var constructors = map[string]bool{
	pkgPath + ".Wrap":        true,
	pkgPath + ".Wrapf":       true,
	pkgPath + ".Field":       true,
	pkgPath + ".AppendField": true,
	pkgPath + ".Recover":     true,
}

// trimInternal drops the frames of this package from the top of the stack
// and the runtime frames from the bottom, so that the first frame is where
// the error was created.
func trimInternal(st errors.StackTrace) errors.StackTrace {
	for len(st) > 0 {
		name := funcName(st[0])
		if !constructors[name] && !strings.HasPrefix(name, "runtime.") {
			break
		}
		st = st[1:]
	}
	for len(st) > 0 && strings.HasPrefix(funcName(st[len(st)-1]), "runtime.") {
		st = st[:len(st)-1]
	}
	return st
}

// frameFunc returns the function of a frame. The frame holds the return
// address, one past the call instruction.
func frameFunc(f errors.Frame) (*runtime.Func, uintptr) {
	pc := uintptr(f) - 1
	return runtime.FuncForPC(pc), pc
}

func funcName(f errors.Frame) string {
	fn, _ := frameFunc(f)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// writeSimpleFrame writes " [path/file.go:line]" with the path relative to
// github.com.
func writeSimpleFrame(w io.Writer, f errors.Frame) {
	file, line := "unknown", 0
	if fn, pc := frameFunc(f); fn != nil {
		file, line = fn.FileLine(pc)
	}
	if i := strings.Index(file, "github.com/"); i >= 0 {
		file = file[i+len("github.com/"):]
	}
	fmt.Fprintf(w, " [%s:%d]", file, line)
}
