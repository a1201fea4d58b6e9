// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"

	"confeval/internal/logger"
	"confeval/internal/validators"
	"confeval/models"
)

// Document keys of the evaluation parameters.
const (
	keyParameter1 = "parameter_1"
	keyParameter2 = "parameter_2"
	keyParameter3 = "parameter_3"
	keyParameter4 = "parameter_4"
	keyParameter5 = "parameter_5"
)

// Built-in defaults, applied when neither the document nor the environment
// provides a value.
const (
	DefaultParameter1 = "default_value"
	DefaultParameter3 = "/path/to/default"
	DefaultParameter5 = "2000-01-01T00:00:00Z"
)

// ResolveParams resolves the evaluation parameters from doc by layering the
// document values over the CONFEVAL_* environment overrides over the
// built-in defaults, and validates the result.
//
// Returns a fully populated *models.Params or an error if the environment
// layer fails to parse, the layers cannot be merged, or the final parameter
// set fails validation (e.g. the mandatory parameter_2 is absent from the
// document).
func ResolveParams(ctx context.Context, doc models.Document) (*models.Params, error) {
	return newParamsBuilder().
		withDocument(doc).
		withEnv().
		withDefaults().
		build(ctx)
}

type paramsBuilder struct {
	doc    models.Document
	hasDoc bool
	layers []*models.Params
	err    error
}

func newParamsBuilder() *paramsBuilder {
	return &paramsBuilder{
		layers: make([]*models.Params, 0, 2),
	}
}

func (b *paramsBuilder) build(ctx context.Context) (*models.Params, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during resolving params: %w", b.err)
	}

	params := new(models.Params)
	for _, layer := range b.layers {
		if err := mergo.Merge(params, layer); err != nil {
			return nil, fmt.Errorf("error merging param layers: %w", err)
		}
	}

	// The document is applied on top of the merged fallback layers by key
	// presence rather than through mergo: a present-but-empty document
	// value must keep its emptiness instead of being filled from below.
	if b.hasDoc {
		applyDocument(params, b.doc)
	}

	logger.FromContext(ctx).Debug().Any("params", params).Msg("resolved parameters")

	return params, validators.NewParamsValidator().Validate(ctx, params)
}

func (b *paramsBuilder) withDocument(doc models.Document) *paramsBuilder {
	b.doc = doc
	b.hasDoc = true
	return b
}

func (b *paramsBuilder) withEnv() *paramsBuilder {
	envParams := &models.Params{}
	if err := parseEnv(envParams); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envParams)
	return b
}

func (b *paramsBuilder) withDefaults() *paramsBuilder {
	b.layers = append(b.layers, &models.Params{
		Parameter1: DefaultParameter1,
		Parameter3: DefaultParameter3,
		Parameter5: DefaultParameter5,
	})
	return b
}

// applyDocument overlays the top-level document keys onto params. Only
// absent keys leave the fallback value in place; a present key always wins,
// even when its value is empty. parameter_2 presence is recorded
// explicitly: a JSON null counts as present.
func applyDocument(params *models.Params, doc models.Document) {
	if v, ok := doc.Get(keyParameter1); ok {
		params.Parameter1 = models.FormatValue(v)
	}

	if v, ok := doc.Get(keyParameter2); ok {
		params.Parameter2 = v
		params.Parameter2Present = true
	}

	if v, ok := doc.Get(keyParameter3); ok {
		params.Parameter3 = models.FormatValue(v)
	}

	if v, ok := doc.Get(keyParameter4); ok {
		// only an actual JSON boolean can trigger the conditional action
		b, isBool := v.(bool)
		params.Parameter4 = isBool && b
	}

	if v, ok := doc.Get(keyParameter5); ok {
		params.Parameter5 = models.FormatValue(v)
	}
}
