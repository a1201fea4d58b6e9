package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingMandatoryParameter = errors.New("'parameter_2' is mandatory but is not provided in the config")
	ErrInvalidTimestamp          = errors.New("'parameter_5' is not a valid RFC 3339 timestamp")
)
