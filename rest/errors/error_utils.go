package errors

import (
	"errors"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// TranslateValidatorError turns validator field errors into a single readable sentence per field,
// in the order the fields were validated. Other errors are returned as they are.
func TranslateValidatorError(err error, trans ut.Translator) error {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		messages = append(messages, fieldError.Translate(trans))
	}
	return errors.New(strings.Join(messages, " "))
}
