// Package errmsg holds the HTTP error values the handlers answer with.
package errmsg

// StatusError pairs a response status with the message rendered as
// {"message": ...}.
type StatusError struct {
	StatusCode int
	Message    string
}

func NewStatusError(statusCode int, message string) StatusError {
	return StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (se StatusError) Error() string {
	return se.Message
}
