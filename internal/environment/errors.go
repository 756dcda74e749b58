// SPDX-FileCopyrightText: 2026 Greenbone AG
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package environment

import "errors"

// Error taxonomy for a build run. Everything is terminal; nothing retries.
// Callers wrap these with fmt.Errorf("context: %w", Err...) and the CLI
// checks them with errors.Is.
var (
	ErrCompilationFailed       = errors.New("compilation failed")
	ErrMissingRequiredFile     = errors.New("missing required file")
	ErrMissingIdentifier       = errors.New("missing identifier")
	ErrInvalidIdentifierFormat = errors.New("invalid identifier format")
	ErrDuplicateIdentifier     = errors.New("duplicate identifier")
	ErrLoaderFailure           = errors.New("loader failure")
)
