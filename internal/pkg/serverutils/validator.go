package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and returns
// a BadRequest AppError listing the failing fields.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrs = errs
	} else {
		return BadRequest("Invalid request body")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return BadRequest("Validation failed: " + strings.Join(fields, ", "))
}
