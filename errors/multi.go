package errors

import (
	"fmt"
	"strings"
)

// Append joins errors into one. Nil errors are dropped and nested multi
// errors are flattened. It returns nil when nothing is left and the error
// itself when only one is left.
func Append(errs ...error) error {
	var joined multiErr
	for _, err := range errs {
		switch e := err.(type) {
		case multiErr:
			joined = append(joined, e...)
		default:
			if !isNilErr(err) {
				joined = append(joined, err)
			}
		}
	}
	switch len(joined) {
	case 0:
		return nil
	case 1:
		return joined[0]
	default:
		return joined
	}
}

// multiErr groups validation failures. Its code is the code of the first
// member.
type multiErr []error

func (m multiErr) Error() string {
	lines := make([]string, len(m))
	for i, err := range m {
		lines[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(m), strings.Join(lines, "\n\t"))
}

func (m multiErr) Code() uint32 {
	if len(m) == 0 {
		return SuccessCode
	}
	return errCode(m[0])
}
