// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads sven's configuration.
//
// A configuration file is optional. Values are layered as defaults, then the
// file, then SVEN_* environment variables, and the result is validated once.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bartekus/sven/internal/header"
)

// Config is the complete sven configuration.
type Config struct {
	Types   TypesConfig   `toml:"types" json:"types" yaml:"types"`
	Output  OutputConfig  `toml:"output" json:"output" yaml:"output"`
	History HistoryConfig `toml:"history" json:"history" yaml:"history"`
}

// TypesConfig selects how the type of a header is recognized.
type TypesConfig struct {
	// Policy is one of "any", "strict" or "like".
	Policy string `toml:"policy" json:"policy" yaml:"policy" validate:"oneof=any strict like"`
	// Known lists the accepted types for the strict and like policies.
	Known []string `toml:"known" json:"known" yaml:"known" validate:"dive,required,excludesall=:()!"`
}

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	Format string `toml:"format" json:"format" yaml:"format" validate:"oneof=text json markdown"`
	Color  string `toml:"color" json:"color" yaml:"color" validate:"oneof=auto always never"`
}

// HistoryConfig bounds commit history linting.
type HistoryConfig struct {
	Limit   int `toml:"limit" json:"limit" yaml:"limit" validate:"gte=1,lte=10000"`
	Workers int `toml:"workers" json:"workers" yaml:"workers" validate:"gte=1,lte=64"`
}

// ErrKnownTypesRequired is returned when a policy that compares against known
// types has none.
var ErrKnownTypesRequired = errors.New("types.known must not be empty for the strict and like policies")

var validate = validator.New()

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Types: TypesConfig{
			Policy: header.PolicyAnyFirstSeq.String(),
		},
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		History: HistoryConfig{
			Limit:   50,
			Workers: 4,
		},
	}
}

// Validate checks field ranges and the rules spanning several fields.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Types.Policy != header.PolicyAnyFirstSeq.String() && len(c.Types.Known) == 0 {
		return ErrKnownTypesRequired
	}
	return nil
}

// ApplyEnvOverrides replaces values with those set in the environment.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SVEN_TYPE_POLICY"); v != "" {
		c.Types.Policy = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SVEN_KNOWN_TYPES"); v != "" {
		c.Types.Known = splitList(v)
	}
	if v := os.Getenv("SVEN_FORMAT"); v != "" {
		c.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SVEN_COLOR"); v != "" {
		c.Output.Color = strings.ToLower(strings.TrimSpace(v))
	}
}

// Policy returns the type matching policy described by c.
// c must be valid.
func (c *Config) Policy() header.Policy {
	switch c.Types.Policy {
	case header.PolicyStrict.String():
		return header.Strict(c.Types.Known...)
	case header.PolicyLike.String():
		return header.Like(c.Types.Known...)
	default:
		return header.AnyFirstSeq()
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
