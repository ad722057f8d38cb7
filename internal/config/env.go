// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment using the
// `env` and `envPrefix` tags. Unset variables leave their fields zero so that
// lower priority sources can fill them during the merge.
//
// Conversion failures of several variables are reported together.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err == nil {
		return &cfg, nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		messages := make([]string, 0, len(aggErr.Errors))
		for _, e := range aggErr.Errors {
			messages = append(messages, e.Error())
		}
		return nil, fmt.Errorf("error getting env configs: %s", strings.Join(messages, "; "))
	}

	return nil, fmt.Errorf("error getting env configs: %w", err)
}
