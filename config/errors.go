// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package config

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyAccountName indicates the default account name is empty.
	ErrEmptyAccountName = errors.New("config: account name must not be empty")

	// ErrStorePathRequired indicates a store was needed but StorePath is empty.
	ErrStorePathRequired = errors.New("config: store_path is not set")

	// ErrSealPassphraseRequired indicates seed sealing was requested without
	// ZWLMIGRATE_SEAL_PASSPHRASE.
	ErrSealPassphraseRequired = errors.New("config: seal_seed requires a seal passphrase")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfig indicates the configuration file could not be parsed.
	ErrInvalidConfig = errors.New("config: invalid configuration file")
)
