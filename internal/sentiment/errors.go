package sentiment

import "fmt"

// Kind tags a classification failure for the transport layer.
type Kind string

const (
	KindBadRequest Kind = "bad_request"
	KindInternal   Kind = "internal"
)

// EmptyTextMessage is returned when the request carries no usable text.
const EmptyTextMessage = "Texto vacío o no enviado."

// Error is the only error type Classify returns.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func badRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Internal wraps a failure from any processing step. The message is the
// cause's text so callers see the underlying description.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: cause.Error(), Cause: cause}
}

// Internalf is Internal for failures without an underlying error.
func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
