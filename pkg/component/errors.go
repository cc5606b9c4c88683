package component

import (
	"errors"

	"tableflip.dev/uikit/pkg/skin"
)

var (
	// ErrMissingTemplate is returned at render time when the model's skin
	// cannot be resolved.
	ErrMissingTemplate = skin.ErrMissingTemplate

	// ErrDestroyed is raised by any public call made after Destroy.
	ErrDestroyed = errors.New("component already destroyed")

	// ErrNilAnchor rejects construction without a host element.
	ErrNilAnchor = errors.New("component anchor is required")

	// ErrUnsupportedType rejects unknown widget sub-types.
	ErrUnsupportedType = errors.New("unsupported component type")

	// ErrInvalidSettings wraps settings that fail validation.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrStructure reports a skin that lacks an element the widget needs.
	ErrStructure = errors.New("skin structure")
)
