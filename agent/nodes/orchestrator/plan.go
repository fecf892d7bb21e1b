package orchestratornode

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// Plan runs the planner stage and records the plan message.
func Plan(in *GraphState, planner contractx.Planner) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	msg, err := planner.Plan(in.SessionID, in.Text, in.TraceID)
	if err != nil {
		return nil, err
	}
	in.PlanMsg = msg

	if plan, ok := msg.Payload.(contractx.PlanPayload); ok {
		log.Info().
			Str("trace_id", in.TraceID).
			Str("disaster_type", plan.DisasterType).
			Str("phase", plan.Phase).
			Str("region", plan.Region).
			Msg("plan_created")
	}
	return in, nil
}
