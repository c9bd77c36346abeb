// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import (
	"strings"

	"github.com/bitfsorg/zwl-zewif-go/logging"
)

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg Config) error {
	if !logging.ValidLevel(cfg.LogLevel) {
		return ErrInvalidLogLevel
	}

	if strings.TrimSpace(cfg.AccountName) == "" {
		return ErrEmptyAccountName
	}

	if cfg.SealSeed && cfg.StorePath == "" {
		return ErrStorePathRequired
	}

	if cfg.SealSeed && cfg.SealPassphrase == "" {
		return ErrSealPassphraseRequired
	}

	return nil
}
