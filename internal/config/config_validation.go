// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/sotf-server-config/internal/logger"
)

// validate checks that the merged [StructuredConfig] is usable before the
// server config is generated.
func (cfg *StructuredConfig) validate() error {
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if slices.Contains(cfg.Source.EnvFiles, "") {
		return ErrInvalidSourceConfigs
	}

	return nil
}
