package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	memoryx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/memory"
	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
	toolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/tool"

	agentsx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents"
	evaluatorx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/evaluator"
	workerx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/worker"
)

type fakePlanner struct {
	gotSessionID string
	gotInput     string
	gotTraceID   string
	err          error
}

func (f *fakePlanner) Plan(sessionID, userInput, traceID string) (protocolx.Message, error) {
	f.gotSessionID = sessionID
	f.gotInput = userInput
	f.gotTraceID = traceID
	if f.err != nil {
		return protocolx.Message{}, f.err
	}
	return protocolx.New(
		string(contractx.AgentTypePlanner),
		string(contractx.AgentTypeWorker),
		contractx.PlanPayload{
			DisasterType: contractx.DisasterEarthquake,
			Phase:        contractx.PhaseDuring,
			Region:       contractx.RegionGeneric,
			Objectives:   []string{"stay safe"},
			RawInput:     userInput,
		},
		traceID,
		nil,
	)
}

type fakeWorker struct {
	gotPlan protocolx.Message
	draft   string
	err     error
}

func (f *fakeWorker) Execute(ctx context.Context, plan protocolx.Message) (protocolx.Message, error) {
	f.gotPlan = plan
	if f.err != nil {
		return protocolx.Message{}, f.err
	}
	payload, _ := plan.Payload.(contractx.PlanPayload)
	return protocolx.New(
		string(contractx.AgentTypeWorker),
		string(contractx.AgentTypeEvaluator),
		contractx.DraftPayload{
			DraftResponse: f.draft,
			DisasterType:  payload.DisasterType,
			Phase:         payload.Phase,
			Region:        payload.Region,
			RawInput:      payload.RawInput,
		},
		plan.TraceID,
		nil,
	)
}

type fakeEvaluator struct {
	gotWork protocolx.Message
	err     error
}

func (f *fakeEvaluator) Evaluate(work protocolx.Message) (protocolx.Message, error) {
	f.gotWork = work
	if f.err != nil {
		return protocolx.Message{}, f.err
	}
	payload, _ := work.Payload.(contractx.DraftPayload)
	return protocolx.New(
		string(contractx.AgentTypeEvaluator),
		string(contractx.AgentTypeOrchestrator),
		contractx.EvalPayload{
			Status:        contractx.EvalStatusApproved,
			FinalResponse: payload.DraftResponse,
			DisasterType:  payload.DisasterType,
			Phase:         payload.Phase,
			Region:        payload.Region,
		},
		work.TraceID,
		nil,
	)
}

type fakeRegistry struct {
	planner   contractx.Planner
	worker    contractx.Worker
	evaluator contractx.Evaluator
}

func (f *fakeRegistry) Planner() contractx.Planner     { return f.planner }
func (f *fakeRegistry) Worker() contractx.Worker       { return f.worker }
func (f *fakeRegistry) Evaluator() contractx.Evaluator { return f.evaluator }

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(ctx context.Context, req contractx.GuidanceRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestHandleMessageSharesOneTraceID(t *testing.T) {
	t.Parallel()

	planner := &fakePlanner{}
	worker := &fakeWorker{draft: "stay under a sturdy table"}
	evaluator := &fakeEvaluator{}
	o, err := New(&fakeRegistry{planner: planner, worker: worker, evaluator: evaluator}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := o.HandleMessage(context.Background(), "s1", "earthquake now")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.TraceID == "" {
		t.Fatal("expected a trace id")
	}
	if planner.gotTraceID != res.TraceID {
		t.Fatalf("planner trace id %q, result %q", planner.gotTraceID, res.TraceID)
	}
	if worker.gotPlan.TraceID != res.TraceID {
		t.Fatalf("worker saw trace id %q, want %q", worker.gotPlan.TraceID, res.TraceID)
	}
	if evaluator.gotWork.TraceID != res.TraceID {
		t.Fatalf("evaluator saw trace id %q, want %q", evaluator.gotWork.TraceID, res.TraceID)
	}
	if res.Response != "stay under a sturdy table" {
		t.Fatalf("unexpected response %q", res.Response)
	}
	if res.DisasterType != contractx.DisasterEarthquake || res.Phase != contractx.PhaseDuring {
		t.Fatalf("unexpected classification %q/%q", res.DisasterType, res.Phase)
	}
}

func TestHandleMessageFreshTraceIDPerTurn(t *testing.T) {
	t.Parallel()

	planner := &fakePlanner{}
	o, err := New(&fakeRegistry{
		planner:   planner,
		worker:    &fakeWorker{draft: "ok"},
		evaluator: &fakeEvaluator{},
	}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := o.HandleMessage(context.Background(), "s1", "flood nearby")
	if err != nil {
		t.Fatalf("first turn: %v", err)
	}
	second, err := o.HandleMessage(context.Background(), "s1", "flood nearby")
	if err != nil {
		t.Fatalf("second turn: %v", err)
	}
	if first.TraceID == second.TraceID {
		t.Fatalf("turns share trace id %q", first.TraceID)
	}
}

func TestHandleMessageEmptyTextFails(t *testing.T) {
	t.Parallel()

	o, err := New(&fakeRegistry{
		planner:   &fakePlanner{},
		worker:    &fakeWorker{},
		evaluator: &fakeEvaluator{},
	}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := o.HandleMessage(context.Background(), "s1", "   "); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestHandleMessageDefaultSessionID(t *testing.T) {
	t.Parallel()

	planner := &fakePlanner{}
	o, err := New(&fakeRegistry{
		planner:   planner,
		worker:    &fakeWorker{draft: "ok"},
		evaluator: &fakeEvaluator{},
	}, Config{DefaultSessionID: "kiosk"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := o.HandleMessage(context.Background(), "", "earthquake"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if planner.gotSessionID != "kiosk" {
		t.Fatalf("session id %q, want kiosk", planner.gotSessionID)
	}
}

func TestHandleMessageStageErrorPropagates(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("backend unreachable")
	o, err := New(&fakeRegistry{
		planner:   &fakePlanner{},
		worker:    &fakeWorker{err: wantErr},
		evaluator: &fakeEvaluator{},
	}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := o.HandleMessage(context.Background(), "s1", "earthquake"); !errors.Is(err, wantErr) {
		t.Fatalf("expected worker error, got %v", err)
	}
}

func TestHandleMessageMissingEvalDefaultsResponse(t *testing.T) {
	t.Parallel()

	o, err := New(&fakeRegistry{
		planner: &fakePlanner{},
		worker:  &fakeWorker{draft: "ok"},
		evaluator: evaluatorFunc(func(work protocolx.Message) (protocolx.Message, error) {
			// A terminal message whose payload is not an evaluation result.
			return protocolx.New(
				string(contractx.AgentTypeEvaluator),
				string(contractx.AgentTypeOrchestrator),
				contractx.DraftPayload{DraftResponse: "ok", DisasterType: "x", Phase: "y", Region: "z", RawInput: "q"},
				work.TraceID,
				nil,
			)
		}),
	}, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := o.HandleMessage(context.Background(), "s1", "earthquake")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != "No response generated." {
		t.Fatalf("unexpected default response %q", res.Response)
	}
}

type evaluatorFunc func(protocolx.Message) (protocolx.Message, error)

func (f evaluatorFunc) Evaluate(work protocolx.Message) (protocolx.Message, error) {
	return f(work)
}

func TestHandleMessageEndToEnd(t *testing.T) {
	t.Parallel()

	store := memoryx.NewStore()
	registry, err := agentsx.NewRegistry(store, &fakeGenerator{text: "Drop, cover, and hold on."}, toolx.NewDirectory())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	o, err := New(registry, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := o.HandleMessage(context.Background(), "s1", "There is an earthquake happening right now near me")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.DisasterType != contractx.DisasterEarthquake {
		t.Fatalf("disaster type %q", res.DisasterType)
	}
	if res.Phase != contractx.PhaseDuring {
		t.Fatalf("phase %q", res.Phase)
	}
	if res.Region != contractx.RegionGeneric {
		t.Fatalf("region %q", res.Region)
	}
	if !strings.Contains(res.Response, "Here is some basic non-medical guidance for a earthquake (during phase):") {
		t.Fatalf("missing guidance header in %q", res.Response)
	}
	if !strings.Contains(res.Response, "Drop, cover, and hold on.") {
		t.Fatalf("missing guidance body in %q", res.Response)
	}
	if !strings.Contains(res.Response, "911/112 (depending on your country)") {
		t.Fatalf("missing generic hotline in %q", res.Response)
	}
}

func TestHandleMessageEndToEndFallback(t *testing.T) {
	t.Parallel()

	store := memoryx.NewStore()
	registry, err := agentsx.NewRegistry(
		store,
		&fakeGenerator{err: errors.New("model offline")},
		toolx.NewDirectory(),
		workerx.WithRetryInterval(time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	o, err := New(registry, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := o.HandleMessage(context.Background(), "s1", "how do I prepare for a flood")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if res.Response != evaluatorx.FallbackResponse {
		t.Fatalf("expected fallback, got %q", res.Response)
	}
}
