package orchestratornode

import (
	"fmt"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
)

// FinalizeReply extracts the turn result from the evaluation message.
func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	out := GraphOutput{
		Response: NoResponseGenerated,
		TraceID:  in.TraceID,
	}
	if eval, ok := in.EvalMsg.Payload.(contractx.EvalPayload); ok {
		if eval.FinalResponse != "" {
			out.Response = eval.FinalResponse
		}
		out.DisasterType = eval.DisasterType
		out.Phase = eval.Phase
		out.Region = eval.Region
	}
	return out, nil
}
