package component

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Settings are the attributes every widget accepts.
type Settings struct {
	Disabled bool   `mapstructure:"disabled" yaml:"disabled" json:"disabled"`
	Template string `mapstructure:"template" yaml:"template" json:"template"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the `validate` tags on a settings struct.
func Validate(settings any) error {
	if err := validatorInstance().Struct(settings); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// Decode merges a loosely typed settings map over out, which callers seed
// with the widget defaults. Only keys present in input change out; unknown
// keys are ignored.
func Decode(input map[string]any, out any) error {
	if len(input) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}
