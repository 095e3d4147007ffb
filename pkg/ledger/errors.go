package ledger

import "fmt"

// ValidationError is a fatal input failure. Whoever owns the process is
// expected to stop with a non-zero exit code when a Session returns one.
type ValidationError struct {
	Verb Verb
	Err  error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SchemaError reports a routes file whose content is not an array of route
// objects. Index is -1 when the problem is with the document as a whole.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("invalid routes file: %s", e.Reason)
	case e.Field == "":
		return fmt.Sprintf("invalid routes file: route %d %s", e.Index, e.Reason)
	default:
		return fmt.Sprintf("invalid routes file: route %d field %q %s", e.Index, e.Field, e.Reason)
	}
}

type UsageError struct {
	Verb    Verb
	Message string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Message)
}

type UnknownCommandError struct {
	Text string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command `%s`", e.Text)
}
