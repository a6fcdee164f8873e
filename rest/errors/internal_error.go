package errors

// InternalError is a storage answer the service could not make sense of. Its message is logged,
// clients only see a generic description.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string {
	return e.msg
}

func NewInternalError(text string) error {
	return &InternalError{msg: text}
}
