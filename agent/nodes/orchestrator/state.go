package orchestratornode

import (
	"errors"

	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

var (
	ErrInvalidMessage = errors.New("user message is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

// NoResponseGenerated is returned when the evaluation payload carries no
// final response.
const NoResponseGenerated = "No response generated."

type GraphInput struct {
	SessionID string
	Text      string
}

type GraphOutput struct {
	Response     string
	TraceID      string
	DisasterType string
	Phase        string
	Region       string
}

// GraphState is threaded through the turn graph. The turn's trace id is
// minted once in StartTurn and shared by every message produced after it.
type GraphState struct {
	SessionID string
	Text      string
	TraceID   string

	PlanMsg protocolx.Message
	WorkMsg protocolx.Message
	EvalMsg protocolx.Message
}
