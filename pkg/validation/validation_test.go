package validation

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Company *string `json:"company"`
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Struct(contactForm{})
	require.Error(t, err)

	assert.Equal(t, []string{
		"Name: field required",
		"Email: field required",
	}, FormatValidationErrors(err))
}

func TestRequiredAcceptsEmptyString(t *testing.T) {
	v := NewValidator()
	empty := ""
	blank := "   "

	assert.NoError(t, v.Struct(contactForm{Name: &empty, Email: &blank}))
}

func TestFormatValidationErrorsUnknownTag(t *testing.T) {
	var form struct {
		Phone string `json:"phone" validate:"len=3"`
	}
	form.Phone = "12"

	err := NewValidator().Struct(form)
	require.Error(t, err)

	assert.Equal(t, []string{"Phone: failed validation (len)"}, FormatValidationErrors(err))
}

func TestFormatValidationErrorsJSONTypeMismatch(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}
	err := json.Unmarshal([]byte(`{"title": 5}`), &dst)
	require.Error(t, err)

	assert.Equal(t, []string{"Title: must be of type string"}, FormatValidationErrors(err))
}

func TestFormatValidationErrorsFallback(t *testing.T) {
	assert.Equal(t, []string{"EOF"}, FormatValidationErrors(errors.New("EOF")))
}
