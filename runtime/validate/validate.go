// Package validate builds the validator that checks the struct tags of generated
// models. Generated code does not import it; hosts call New once and validate
// model values with the result.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NotBlank is the tag of non-blank string fields. The validator does not
// provide it, New registers it.
const NotBlank = "notblank"

// New returns a validator knowing every tag generated models use.
func New() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(NotBlank, validators.NotBlank); err != nil {
		return nil, fmt.Errorf("validate: register %s: %w", NotBlank, err)
	}
	return v, nil
}
