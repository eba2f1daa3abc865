/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for figtokens.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"bennypowers.dev/figtokens/generate"
	"bennypowers.dev/figtokens/token"
)

// ErrInvalidConfig indicates the configuration failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the figtokens configuration.
type Config struct {
	// Input is the export path or http(s) URL, relative to the project root.
	Input string `yaml:"input" json:"input"`

	// Output is the artifact path, relative to the project root.
	Output string `yaml:"output" json:"output" validate:"omitempty,local_path"`

	// Prefix is the CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix" validate:"omitempty,startswith=--"`

	// Families allow-lists palette names by substring.
	// Omitted means the built-in families; an empty list forms no palettes.
	Families []string `yaml:"families" json:"families" validate:"omitempty,dive,required"`

	// Ignore lists doublestar patterns for token names to drop.
	Ignore []string `yaml:"ignore" json:"ignore" validate:"omitempty,dive,required,glob"`

	// Atomic writes the artifact through a temporary file and rename.
	Atomic bool `yaml:"atomic" json:"atomic"`

	// Clamp restricts RGB channels to [0,1].
	Clamp bool `yaml:"clamp" json:"clamp"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:  generate.DefaultInput,
		Output: generate.DefaultOutput,
		Prefix: token.DefaultPrefix,
	}
}

// withDefaults fills unset scalar fields from Default.
func (c *Config) withDefaults() *Config {
	d := Default()
	if c.Input == "" {
		c.Input = d.Input
	}
	if c.Output == "" {
		c.Output = d.Output
	}
	if c.Prefix == "" {
		c.Prefix = d.Prefix
	}
	return c
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
			return doublestar.ValidatePattern(fl.Field().String())
		})

		_ = v.RegisterValidation("local_path", func(fl validator.FieldLevel) bool {
			return !strings.Contains(fl.Field().String(), "://")
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field constraints. Failures wrap ErrInvalidConfig.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fe := ves[0]
		return fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidConfig, fieldName(fe), fe.Tag())
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}

// fieldName renders a validator namespace the way it appears in the file,
// e.g. "Config.Families[0]" becomes "families[0]".
func fieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	_, field, found := strings.Cut(ns, ".")
	if !found {
		field = ns
	}
	return strings.ToLower(field)
}

// Options converts the config to pipeline options rooted at root.
func (c *Config) Options(root string) generate.Options {
	return generate.Options{
		Root:     root,
		Input:    c.Input,
		Output:   c.Output,
		Prefix:   c.Prefix,
		Families: c.Families,
		Ignore:   c.Ignore,
		Atomic:   c.Atomic,
		Clamp:    c.Clamp,
	}
}
