package config

import (
	"errors"
	"fmt"
	"sync"

	naverrors "github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/schema"
)

// SchemaValidator validates configuration documents against the generated schema.
type SchemaValidator struct {
	validator *schema.Validator
}

// layer says which file of the hierarchy a document came from. Only the
// project file has to list modules; the global file supplies defaults.
type layer int

const (
	projectLayer layer = iota
	globalLayer
)

var (
	projectValidator     *SchemaValidator
	projectValidatorErr  error
	projectValidatorOnce sync.Once

	globalValidator     *SchemaValidator
	globalValidatorErr  error
	globalValidatorOnce sync.Once
)

// NewSchemaValidator generates and compiles the configuration schema.
func NewSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	return compileValidator("navpanel.schema.json", data)
}

// NewGlobalSchemaValidator is NewSchemaValidator for the global file, which
// may omit modules.
func NewGlobalSchemaValidator() (*SchemaValidator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	relaxed, err := schema.WithoutRequired(data, "modules")
	if err != nil {
		return nil, err
	}
	return compileValidator("navpanel.global.schema.json", relaxed)
}

func compileValidator(name string, data []byte) (*SchemaValidator, error) {
	validator, err := schema.NewValidator(name, data)
	if err != nil {
		return nil, err
	}
	return &SchemaValidator{validator: validator}, nil
}

// Validate validates configuration data against the schema.
func (v *SchemaValidator) Validate(configData interface{}) error {
	return v.validator.Validate(configData)
}

func validatorFor(l layer) (*SchemaValidator, error) {
	if l == globalLayer {
		globalValidatorOnce.Do(func() {
			globalValidator, globalValidatorErr = NewGlobalSchemaValidator()
		})
		return globalValidator, globalValidatorErr
	}
	projectValidatorOnce.Do(func() {
		projectValidator, projectValidatorErr = NewSchemaValidator()
	})
	return projectValidator, projectValidatorErr
}

// validateDocument checks a decoded document before it is mapped onto Config.
func validateDocument(doc map[string]interface{}, path string, l layer) error {
	validator, err := validatorFor(l)
	if err != nil {
		return naverrors.Wrap(err, naverrors.ErrCodeInternal, "failed to create validator")
	}

	if err := validator.Validate(doc); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			return naverrors.ConfigValidation(path, verr.Violations)
		}
		return naverrors.Wrap(err, naverrors.ErrCodeConfigInvalid, "schema validation failed")
	}
	return nil
}
