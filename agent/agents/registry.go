package agents

import (
	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	memoryx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/memory"

	evaluatorx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/evaluator"
	plannerx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/planner"
	workerx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/worker"
)

type registryImpl struct {
	planner   contractx.Planner
	worker    contractx.Worker
	evaluator contractx.Evaluator
}

func (r *registryImpl) Planner() contractx.Planner {
	return r.planner
}

func (r *registryImpl) Worker() contractx.Worker {
	return r.worker
}

func (r *registryImpl) Evaluator() contractx.Evaluator {
	return r.evaluator
}

// NewRegistry wires the three pipeline stages around the shared session
// store and the external collaborators.
func NewRegistry(
	store *memoryx.Store,
	guidance contractx.GuidanceGenerator,
	hotlines contractx.HotlineDirectory,
	workerOpts ...workerx.Option,
) (contractx.Registry, error) {
	planner, err := plannerx.New(store)
	if err != nil {
		return nil, err
	}
	worker, err := workerx.New(guidance, hotlines, workerOpts...)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		planner:   planner,
		worker:    worker,
		evaluator: evaluatorx.New(),
	}, nil
}
