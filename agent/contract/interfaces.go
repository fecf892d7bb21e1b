package contract

import (
	"context"

	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

// Planner classifies one user input and produces a plan message addressed
// to the worker. Classification is deterministic; no I/O happens here.
type Planner interface {
	Plan(sessionID, userInput, traceID string) (protocolx.Message, error)
}

// Worker executes a plan message by calling the guidance and hotline
// collaborators, producing a draft message addressed to the evaluator.
type Worker interface {
	Execute(ctx context.Context, plan protocolx.Message) (protocolx.Message, error)
}

// Evaluator sanitizes a draft message and produces the terminal evaluation
// message addressed back to the orchestrator.
type Evaluator interface {
	Evaluate(work protocolx.Message) (protocolx.Message, error)
}

// Registry exposes the three pipeline stages to the orchestrator.
type Registry interface {
	Planner() Planner
	Worker() Worker
	Evaluator() Evaluator
}

// GuidanceGenerator is the external text-generation collaborator.
type GuidanceGenerator interface {
	Generate(ctx context.Context, req GuidanceRequest) (string, error)
}

// HotlineDirectory maps a region to emergency contact strings. Lookup is
// pure and total: unrecognized regions get the fixed generic mapping.
type HotlineDirectory interface {
	Lookup(region string) map[string]string
}
