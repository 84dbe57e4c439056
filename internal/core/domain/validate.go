package domain

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failing field of a request. Handlers and the
// form controller surface these directly, so Message is written for end
// users rather than for logs.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

var validate = newValidator()

// newValidator builds the shared validator. Field names in errors are taken
// from the json tags so they match the wire naming of the request bodies.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "field/tag" pairs to the user-facing message. Entries
// keyed by field alone act as the fallback for any tag on that field.
var fieldMessages = map[string]string{
	"userId":       "User id is required",
	"name":         "Campaign name is required",
	"name/max":     "Campaign name must be less than 100 characters",
	"objective":    "Please select a campaign objective",
	"budget":       "Budget must be a positive number",
	"audience":     "Target audience description is required",
	"audience/min": "Target audience description must be at least 10 characters",
	"audience/max": "Target audience description must be less than 500 characters",
}

func validateStruct(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator returns InvalidValidationError only for non-struct
		// input, which is a programming error here.
		return []FieldError{{Field: "input", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
