package introspect

import "errors"

var (
	ErrUnresolvableController = errors.New("controller cannot be resolved")
	ErrReflection             = errors.New("method cannot be reflected")
	ErrNoModule               = errors.New("go.mod not found")
)
