package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Binder decodes raw configuration sections into typed structs and
// validates the result. Modules use it inside Init to turn the section the
// registry resolved for them into their own config type.
//
// Struct fields use `config` tags for mapping and `validate` tags for
// go-playground/validator rules:
//
//	type Config struct {
//	    Addr    string        `config:"addr" validate:"required"`
//	    Timeout time.Duration `config:"timeout"`
//	}
//
// Decoding is weakly typed ("8080" binds to an int field) and understands
// duration strings ("5s") and comma-separated lists.
type Binder struct {
	validate *validator.Validate
}

// BindError reports which stage of binding failed: "decode" for type
// mismatches, "validate" for rule violations.
type BindError struct {
	Stage string
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("config %s error: %v", e.Stage, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

func NewBinder() *Binder {
	return &Binder{validate: validator.New()}
}

// Bind decodes source into target (a struct pointer) and validates it. The
// target may be partially populated when decode succeeds but validation
// fails.
func (b *Binder) Bind(source map[string]any, target any) error {
	if err := b.decode(source, target); err != nil {
		return &BindError{Stage: "decode", Err: err}
	}
	if err := b.validate.Struct(target); err != nil {
		return &BindError{Stage: "validate", Err: err}
	}
	return nil
}

func (b *Binder) decode(source map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		TagName: "config",
	})
	if err != nil {
		return err
	}
	return dec.Decode(source)
}
