// SPDX-License-Identifier: Apache-2.0

// Package app contains the configuration evaluator and the shared
// human-readable message strings written into log entries to describe the
// outcome of an evaluation. Keeping the messages in one place ensures
// consistent wording throughout the tool.
package app

const (
	// MsgEvaluatingConfiguration is logged when an evaluation run starts.
	MsgEvaluatingConfiguration = "evaluating configuration"

	// MsgExtractedParameters introduces the resolved parameter listing.
	MsgExtractedParameters = "extracted parameters"

	// MsgPerformingActions is logged before the parameter-driven action
	// steps run.
	MsgPerformingActions = "performing actions based on the configuration"

	// MsgBooleanAction is logged when parameter_4 is true.
	MsgBooleanAction = "boolean parameter is true, taking appropriate action"

	// MsgSimulatedAction is logged when parameter_3 is non-empty.
	MsgSimulatedAction = "simulating action with parameter 3"

	// MsgEvaluationCompleted is the final line of a successful run.
	MsgEvaluationCompleted = "configuration evaluation completed successfully"
)
