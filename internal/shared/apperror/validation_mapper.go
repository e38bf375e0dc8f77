package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first validator/v10 failure into an AppError
// whose message names the offending field. Field names come from json tags
// (see Init), so messages reference wire names like "dataDespesa".
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "email":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be a valid email address", field),
			http.StatusBadRequest,
		)
	case "min":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be at least %s characters", field, e.Param()),
			http.StatusBadRequest,
		)
	case "oneof":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be one of: %s", field, e.Param()),
			http.StatusBadRequest,
		)
	default:
		return InvalidField(field)
	}
}
