package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage flattens a gin binding error into a readable message.
// Validator errors are reported per field; anything else (malformed JSON,
// wrong types) is passed through as-is.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("field '%s' is required", fe.Field())
		case "oneof":
			parts[i] = fmt.Sprintf("field '%s' must be one of [%s]", fe.Field(), fe.Param())
		case "min":
			parts[i] = fmt.Sprintf("field '%s' must be at least %s", fe.Field(), fe.Param())
		case "max":
			parts[i] = fmt.Sprintf("field '%s' must be at most %s", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("field '%s' failed validation '%s'", fe.Field(), fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}
