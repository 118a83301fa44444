package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates a request DTO against its `validate` tags and returns a
// single human-readable error listing every failed field.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var failures []string
	for _, fe := range verrs {
		failures = append(failures, fmt.Sprintf("%s failed on '%s'", fe.StructNamespace(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(failures, "; "))
}
