package orchestratornode

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// StartTurn validates the request and mints the turn's trace id.
func StartTurn(in GraphInput, newTraceID func() string) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}

	traceID := newTraceID()
	log.Info().
		Str("trace_id", traceID).
		Str("session_id", sessionID).
		Str("user_input", text).
		Msg("user_message")

	return &GraphState{
		SessionID: sessionID,
		Text:      text,
		TraceID:   traceID,
	}, nil
}
