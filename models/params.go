// SPDX-License-Identifier: Apache-2.0

package models

// Params is the resolved parameter set of a configuration evaluation run.
// It is assembled by merging three layers (document values, CONFEVAL_*
// environment overrides, built-in defaults) and is immutable after
// resolution.
//
// Struct tags:
//   - env  — environment variable name, resolved with the CONFEVAL_ prefix
//     (caarlos0/env). Parameter2 carries no env tag: the mandatory
//     parameter must come from the document itself.
//   - json — key name in the configuration document, used when a Params
//     value is serialized into debug log entries.
type Params struct {
	// Parameter1 is an optional free-form value. Non-string document
	// values are rendered to their JSON form during resolution.
	Parameter1 string `env:"PARAMETER_1" json:"parameter_1"`

	// Parameter2 is the mandatory parameter. Any JSON value is accepted,
	// including null; only presence is validated.
	Parameter2 any `json:"parameter_2"`

	// Parameter2Present records whether parameter_2 appeared in the
	// document. It distinguishes an explicit JSON null from an absent key.
	Parameter2Present bool `json:"-"`

	// Parameter3 is an optional path-like value used by the simulated
	// action step.
	Parameter3 string `env:"PARAMETER_3" json:"parameter_3"`

	// Parameter4 is an optional boolean that gates the conditional action
	// step. Non-boolean document values are ignored.
	Parameter4 bool `json:"parameter_4"`

	// Parameter5 is an optional RFC 3339 timestamp used as the reference
	// time of the evaluation.
	Parameter5 string `env:"PARAMETER_5" json:"parameter_5"`
}
