// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"github.com/MKhiriev/sotf-server-config/internal/environment"
	"github.com/MKhiriev/sotf-server-config/internal/logger"
)

// Builder assembles a [Config] from an environment snapshot.
type Builder struct {
	env      environment.Environment
	sections []Section
	log      *logger.Logger
}

// NewBuilder returns a Builder reading from env. A nil log disables
// logging.
func NewBuilder(env environment.Environment, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}

	return &Builder{
		env:      env,
		sections: Sections(),
		log:      log,
	}
}

// Build assembles the configuration. The first coercion or validation error
// aborts the build and no Config is returned.
func (b *Builder) Build() (*Config, error) {
	cfg := newConfig()

	for _, section := range b.sections {
		if err := b.apply(section, cfg.section(section.Name)); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Render builds the configuration and encodes it with [Config.Render].
func (b *Builder) Render() ([]byte, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}

	return cfg.Render()
}

func (b *Builder) apply(section Section, dst *Settings) error {
	for _, field := range section.Fields {
		value, ok := b.env.Lookup(field.Env)
		if !ok && section.OmitAbsent {
			b.log.Debug().Str("section", section.Name).Str("env", field.Env).Msg("setting omitted")
			continue
		}

		resolved, err := field.Resolve(value, ok)
		if err != nil {
			return err
		}

		dst.Set(field.Key, resolved)
		b.log.Debug().
			Str("section", section.Name).
			Str("env", field.Env).
			Str("key", field.Key).
			Bool("set", ok).
			Msg("setting applied")
	}

	return nil
}
