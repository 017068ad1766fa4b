// Package apierr defines the error taxonomy every handler maps failures into.
// Nothing escapes a handler as an unstructured fault: each error carries a
// kind that decides the HTTP status and a message safe to show the caller.
package apierr

// Kind classifies an API failure.
type Kind int

const (
	KindValidation  Kind = iota // malformed or missing input
	KindDuplicate               // unique-constraint violation
	KindAuth                    // bad or missing credential
	KindNotFound                // no matching record
	KindPersistence             // backing-store failure
)

// Error is a classified API failure. Message is user-facing; Cause keeps the
// underlying error for logs.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports malformed or missing input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Duplicate reports a unique-constraint violation.
func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// Auth reports a bad or missing credential.
func Auth() *Error {
	return &Error{Kind: KindAuth, Message: "Unauthorized"}
}

// NotFound reports that no record matched.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Persistence wraps a backing-store failure. message is what the caller sees;
// cause is what gets logged.
func Persistence(message string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Cause: cause}
}
