// SPDX-License-Identifier: Apache-2.0

// Package config loads the configuration document and resolves the
// evaluation parameters from it.
//
// Resolution layers three sources, first match wins per field:
//  1. values found in the document itself;
//  2. CONFEVAL_* environment overrides;
//  3. built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"confeval/models"
)

// LoadDocument fully reads the file at path and parses the contents as a
// single generic JSON value. The whole contents must be that one value;
// anything following it is a parse failure.
//
// Open/read failures wrap ErrRead with the underlying OS error; malformed
// JSON wraps ErrParse with the decoder error. Neither is recovered locally.
func LoadDocument(path string) (models.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w %q: %w", ErrRead, path, err)
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return models.Document{}, fmt.Errorf("%w %q: %w", ErrParse, path, err)
	}

	return models.NewDocument(value), nil
}
