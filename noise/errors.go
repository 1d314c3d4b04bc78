package noise

import (
	"errors"
	"fmt"
)

// ErrConfig matches every configuration error returned by this package.
var ErrConfig = errors.New("noise: invalid configuration")

// ConfigError reports a rejected Config field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("noise: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
