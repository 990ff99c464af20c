package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct checks s against its validate tags and joins every
// failed field into one error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
