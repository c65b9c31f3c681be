// Package config loads and validates YAML setup for a gathering system:
// the organizer declaration, expected gatherer params, IRI prefix
// shorthand, and metrics enablement.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/gather"
	"github.com/c360studio/semgather/vocabulary"
)

// Config is the complete setup for a gathering system.
type Config struct {
	Organizer OrganizerConfig   `yaml:"organizer"`
	Prefixes  map[string]string `yaml:"prefixes,omitempty"`
	Metrics   MetricsConfig     `yaml:"metrics,omitempty"`
}

// OrganizerConfig declares the organizer identity, the parameter names
// every gathering must provide, and the focus types it is primarily about.
type OrganizerConfig struct {
	Name       string   `yaml:"name"`
	ParamNames []string `yaml:"params,omitempty"`
	FocusTypes []string `yaml:"focusTypes,omitempty"`
}

// MetricsConfig toggles engine instrumentation.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads and parses a config file, validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config", "Load", "read file")
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, validating the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.NewConfig(
			"invalid-config",
			fmt.Sprintf("cannot decode config: %v", err),
			errors.ErrInvalidConfig,
		)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and prefix well-formedness.
func (c *Config) Validate() error {
	if c.Organizer.Name == "" {
		return errors.NewConfig(
			"missing-config",
			"organizer.name is required",
			errors.ErrMissingConfig,
		)
	}
	for prefix, expansion := range c.Prefixes {
		if prefix == "" || strings.ContainsAny(prefix, ": /") {
			return errors.NewConfig(
				"invalid-config",
				fmt.Sprintf("prefix %q is not a usable shorthand label", prefix),
				errors.ErrInvalidConfig,
			)
		}
		if !strings.Contains(expansion, ":") {
			return errors.NewConfig(
				"invalid-config",
				fmt.Sprintf("prefix %q expands to %q, which is not an iri", prefix, expansion),
				errors.ErrInvalidConfig,
			)
		}
	}
	for _, typeIRI := range c.Organizer.FocusTypes {
		if !strings.Contains(typeIRI, ":") {
			return errors.NewConfig(
				"invalid-config",
				fmt.Sprintf("focus type %q is not an iri", typeIRI),
				errors.ErrInvalidConfig,
			)
		}
	}
	return nil
}

// Shorthand builds the IRI prefix map declared by the config, layered over
// the standard prefixes.
func (c *Config) Shorthand() *vocabulary.Shorthand {
	return vocabulary.NewShorthand(c.Prefixes)
}

// NewOrganizer builds an empty organizer from the declaration: name, param
// names, and focus types carried into the norms. Gatherers register on the
// result.
func (c *Config) NewOrganizer() *gather.Organizer {
	norms := gather.Norms{FocusTypes: append([]string(nil), c.Organizer.FocusTypes...)}
	return gather.NewOrganizer(
		c.Organizer.Name,
		norms,
		gather.WithParamNames(c.Organizer.ParamNames...),
	)
}
