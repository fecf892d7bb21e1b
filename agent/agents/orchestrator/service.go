package orchestrator

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	nodex "github.com/poojitha01-5/Crisis-Info-Navigator/agent/nodes/orchestrator"
	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidSession = nodex.ErrInvalidSession
)

type Config struct {
	DefaultSessionID string
}

// Result is the outcome of one conversational turn.
type Result struct {
	Response     string
	TraceID      string
	DisasterType string
	Phase        string
	Region       string
}

type Orchestrator struct {
	agents contractx.Registry

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	defaultSessionID string

	newTraceID func() string
}

func New(agents contractx.Registry, cfg Config) (*Orchestrator, error) {
	if agents == nil {
		return nil, errors.New("agent registry is required")
	}

	defaultSessionID := strings.TrimSpace(cfg.DefaultSessionID)
	if defaultSessionID == "" {
		defaultSessionID = "default"
	}

	o := &Orchestrator{
		agents:           agents,
		defaultSessionID: defaultSessionID,
		newTraceID:       protocolx.NewTraceID,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage runs one user message through the plan, execute, evaluate
// pipeline. Every message produced during the turn carries the same trace id.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID string, text string) (Result, error) {
	if strings.TrimSpace(sessionID) == "" {
		sessionID = o.defaultSessionID
	}

	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Response:     out.Response,
		TraceID:      out.TraceID,
		DisasterType: out.DisasterType,
		Phase:        out.Phase,
		Region:       out.Region,
	}, nil
}
