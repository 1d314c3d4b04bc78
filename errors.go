package shade

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every configuration error returned by shade matches
// ErrConfig under errors.Is, and every region error matches ErrBounds.
var (
	ErrConfig = errors.New("shade: invalid configuration")
	ErrBounds = errors.New("shade: region outside buffer")
)

// ConfigError reports an invalid parameter. Err holds an underlying cause,
// such as a noise configuration error.
type ConfigError struct {
	Param  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("shade: invalid %s: %s: %v", e.Param, e.Reason, e.Err)
	}
	return fmt.Sprintf("shade: invalid %s: %s", e.Param, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(param, reason string) error {
	return &ConfigError{Param: param, Reason: reason}
}

// BoundsError reports a render region that does not fit inside the buffer.
type BoundsError struct {
	Region        Region
	Width, Height int
}

func (e *BoundsError) Error() string {
	r := e.Region
	return fmt.Sprintf("shade: region %dx%d+%d+%d outside %dx%d buffer",
		r.Width, r.Height, r.X, r.Y, e.Width, e.Height)
}

// Is reports whether target is ErrBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrBounds }
