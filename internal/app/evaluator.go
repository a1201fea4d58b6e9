// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"time"

	"confeval/internal/logger"
	"confeval/internal/validators"
	"confeval/models"
)

// Evaluator performs the parameter-driven evaluation steps of a run: it
// re-checks the resolved parameter set, logs each value, executes the
// conditional actions and emits the completion message.
type Evaluator struct {
	log       *logger.Logger
	validator validators.Validator
}

func NewEvaluator(log *logger.Logger) *Evaluator {
	return &Evaluator{
		log:       log,
		validator: validators.NewParamsValidator(),
	}
}

// Evaluate runs the evaluation sequence for params. Any validation failure
// aborts the run before the first parameter line is logged; afterwards the
// sequence always runs to completion.
func (e *Evaluator) Evaluate(ctx context.Context, params *models.Params) error {
	if err := e.validator.Validate(ctx, params); err != nil {
		return fmt.Errorf("error validating params: %w", err)
	}

	e.log.Info().Msg(MsgEvaluatingConfiguration)

	e.log.Info().Msg(MsgExtractedParameters)
	e.log.Info().Msgf("parameter_1 = %s", params.Parameter1)
	e.log.Info().Msgf("parameter_2 = %s", models.FormatValue(params.Parameter2))
	e.log.Info().Msgf("parameter_3 = %s", params.Parameter3)
	e.log.Info().Msgf("parameter_4 = %t", params.Parameter4)
	e.log.Info().Msgf("parameter_5 = %s", params.Parameter5)

	e.log.Info().Msg(MsgPerformingActions)

	if params.Parameter4 {
		e.log.Info().Msg(MsgBooleanAction)
	}

	if params.Parameter3 != "" {
		e.log.Info().Str("parameter_3", params.Parameter3).Msg(MsgSimulatedAction)
	}

	// already validated as RFC 3339 above
	if ts, err := time.Parse(time.RFC3339, params.Parameter5); err == nil {
		e.log.Debug().Time("reference_time", ts).Msg("resolved reference time")
	}

	e.log.Info().Msg(MsgEvaluationCompleted)

	return nil
}
