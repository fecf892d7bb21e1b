package evaluator

import (
	"fmt"
	"strings"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

// Ordered list of phrases redacted from every draft. Matching is literal
// and case-sensitive; each phrase is applied to the output of the
// previous one.
var forbiddenPhrases = []string{
	"diagnose",
	"prescription",
	"medication",
	"dose",
	"treat this condition",
}

const redactionMarker = "[redacted]"

// FallbackResponse replaces a draft that sanitizes down to nothing.
const FallbackResponse = "I was not able to generate guidance. " +
	"Please contact your local emergency services or authorities."

// Evaluator sanitizes the worker's draft and emits the terminal message
// of the turn. It is a pure function of its inputs and the phrase list;
// there is no rejection branch in the current design.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Evaluate(workMsg protocolx.Message) (protocolx.Message, error) {
	draft, ok := workMsg.Payload.(contractx.DraftPayload)
	if !ok {
		return protocolx.Message{}, fmt.Errorf("%w: expected draft payload, got %T", contractx.ErrValidation, workMsg.Payload)
	}

	safe := Sanitize(draft.DraftResponse)
	if safe == "" {
		safe = FallbackResponse
	}

	payload := contractx.EvalPayload{
		Status:        contractx.EvalStatusApproved,
		FinalResponse: safe,
		DisasterType:  draft.DisasterType,
		Phase:         draft.Phase,
		Region:        draft.Region,
	}

	return protocolx.New(
		string(contractx.AgentTypeEvaluator),
		string(contractx.AgentTypeOrchestrator),
		payload,
		workMsg.TraceID,
		nil,
	)
}

// Sanitize replaces every occurrence of each forbidden phrase with the
// redaction marker and trims surrounding whitespace. It is idempotent:
// the marker itself contains no forbidden phrase.
func Sanitize(text string) string {
	sanitized := text
	for _, phrase := range forbiddenPhrases {
		sanitized = strings.ReplaceAll(sanitized, phrase, redactionMarker)
	}
	return strings.TrimSpace(sanitized)
}
