package orchestratornode

import (
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// Evaluate runs the evaluator stage on the work message.
func Evaluate(in *GraphState, evaluator contractx.Evaluator) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	msg, err := evaluator.Evaluate(in.WorkMsg)
	if err != nil {
		return nil, err
	}
	in.EvalMsg = msg

	if eval, ok := msg.Payload.(contractx.EvalPayload); ok {
		log.Info().
			Str("trace_id", in.TraceID).
			Str("status", string(eval.Status)).
			Msg("evaluation_completed")
	}
	return in, nil
}
