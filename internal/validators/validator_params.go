package validators

import (
	"context"
	"fmt"
	"time"

	"confeval/models"
)

const (
	FieldParameter2 = "parameter_2"
	FieldParameter5 = "parameter_5"
)

// ParamsValidator enforces the configuration rules on a resolved parameter
// set: the mandatory parameter must have been present in the document, and
// the reference timestamp must parse as RFC 3339.
type ParamsValidator struct {
}

func NewParamsValidator() Validator {
	return &ParamsValidator{}
}

func (v *ParamsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Params:
		return v.validateParams(ctx, value, fields...)
	case *models.Params:
		return v.validateParams(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ParamsValidator) validateParams(_ context.Context, params models.Params, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldParameter2, FieldParameter5}
	}

	for _, field := range fields {
		switch field {
		case FieldParameter2:
			if !params.Parameter2Present {
				return ErrMissingMandatoryParameter
			}

		case FieldParameter5:
			if _, err := time.Parse(time.RFC3339, params.Parameter5); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
			}

		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
