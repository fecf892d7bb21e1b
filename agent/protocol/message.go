package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidMessage reports a message that failed factory validation.
var ErrInvalidMessage = errors.New("invalid message")

// MessageType tags the semantic kind of a message payload.
type MessageType string

const (
	MessageTypePlanResult MessageType = "PLAN_RESULT"
	MessageTypeWorkResult MessageType = "WORK_RESULT"
	MessageTypeEvalResult MessageType = "EVAL_RESULT"
)

// Payload is one of the discriminated per-stage payload variants. Each
// variant reports its message type and validates its own fields.
type Payload interface {
	MessageType() MessageType
	Validate() error
}

// Message is the immutable envelope exchanged between pipeline stages.
// MessageID is unique per message; TraceID is shared by every message
// produced while handling one user turn.
type Message struct {
	MessageID string            `json:"message_id"`
	TraceID   string            `json:"trace_id"`
	Sender    string            `json:"sender"`
	Receiver  string            `json:"receiver"`
	Type      MessageType       `json:"type"`
	Payload   Payload           `json:"payload"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// NewTraceID mints the identifier that correlates one user turn.
func NewTraceID() string {
	return uuid.NewString()
}

// NewMessageID mints a per-message identifier.
func NewMessageID() string {
	return uuid.NewString()
}

// New builds a Message with a fresh message id. The message type is taken
// from the payload variant, and the payload is validated here rather than
// at each consumer.
func New(sender, receiver string, payload Payload, traceID string, meta map[string]string) (Message, error) {
	if strings.TrimSpace(sender) == "" {
		return Message{}, fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(receiver) == "" {
		return Message{}, fmt.Errorf("%w: receiver is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(traceID) == "" {
		return Message{}, fmt.Errorf("%w: trace id is required", ErrInvalidMessage)
	}
	if payload == nil {
		return Message{}, fmt.Errorf("%w: payload is required", ErrInvalidMessage)
	}
	if err := payload.Validate(); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if meta == nil {
		meta = map[string]string{}
	}

	return Message{
		MessageID: NewMessageID(),
		TraceID:   traceID,
		Sender:    sender,
		Receiver:  receiver,
		Type:      payload.MessageType(),
		Payload:   payload,
		Meta:      meta,
	}, nil
}
