/*
Package errors implements the error handling used across starksig.

Every error returned to a caller wraps one root error. Root errors are
declared with Register and carry a code that is stable across releases, so
that a caller can tell a malformed bundle from an unknown signer without
parsing messages. The multisig extension declares its rejection causes in
x/multisig/errors.go.

Create errors at the point of failure with Wrap or Wrapf. The innermost wrap
records a stack trace, wrapping again only adds a message. Validation
collects one error per field path with AppendField, the way NewOwnerSet
reports Threshold and Owners.<i>.

CodeInfo turns any error into the code and message shown to the user.

Formatting an error:

	%s   the message
	%v   the message with a [file:line] of where the error was created
	%+v  the message followed by the full stack trace
*/
package errors
