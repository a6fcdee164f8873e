package errors

// NotFoundError reports a table or column that is not exposed. Handlers answer it with 404.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func NewNotFoundError(text string) error {
	return &NotFoundError{msg: text}
}
