package orchestratornode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// ExecutePlan runs the worker stage on the plan message.
func ExecutePlan(ctx context.Context, in *GraphState, worker contractx.Worker) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	msg, err := worker.Execute(ctx, in.PlanMsg)
	if err != nil {
		return nil, err
	}
	in.WorkMsg = msg

	if draft, ok := msg.Payload.(contractx.DraftPayload); ok {
		log.Info().
			Str("trace_id", in.TraceID).
			Int("draft_chars", len(draft.DraftResponse)).
			Msg("work_completed")
	}
	return in, nil
}
