package errors

import (
	"errors"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchRequest struct {
	Column string `validate:"required"`
	Limit  int    `validate:"lte=100"`
}

func TestTranslateValidatorError(t *testing.T) {
	v := validator.New()
	trans, _ := ut.New(en.New(), en.New()).GetTranslator("en")
	require.NoError(t, enTranslations.RegisterDefaultTranslations(v, trans))

	err := TranslateValidatorError(v.Struct(searchRequest{Limit: 500}), trans)
	assert.EqualError(t, err, "Column is a required field Limit must be 100 or less")

	other := errors.New("unable to parse payload")
	assert.Equal(t, other, TranslateValidatorError(other, trans))
}

func TestErrorTypes(t *testing.T) {
	assert.IsType(t, &NotFoundError{}, NewNotFoundError("table 'x' not found"))
	assert.IsType(t, &BadRequestError{}, NewBadRequestError("bad"))
	assert.IsType(t, &InternalError{}, NewInternalError("boom"))
	assert.EqualError(t, NewInternalError("boom"), "boom")
}
