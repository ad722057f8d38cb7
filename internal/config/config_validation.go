// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	minPasswordHashCost = 4
	maxPasswordHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < minPasswordHashCost || cfg.App.PasswordHashCost > maxPasswordHashCost {
		return fmt.Errorf("%w: password hash cost must be in range %d-%d",
			ErrInvalidAppConfigs, minPasswordHashCost, maxPasswordHashCost)
	}

	remote := strings.TrimSpace(cfg.Storage.Remote.URL) != ""
	db := strings.TrimSpace(cfg.Storage.DB.DSN) != ""
	switch {
	case remote && db:
		return fmt.Errorf("%w: configure either a remote data service or a database DSN, not both", ErrInvalidStorageConfigs)
	case !remote && !db:
		return fmt.Errorf("%w: a remote data service or a database DSN is required", ErrInvalidStorageConfigs)
	case remote && cfg.Storage.Remote.Key == "":
		return fmt.Errorf("%w: remote data service key is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("%w: port must be in range 1-65535", ErrInvalidServerConfigs)
	}

	return nil
}
