package contract

import (
	"fmt"
	"strings"

	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

type AgentType string

const (
	AgentTypePlanner      AgentType = "planner"
	AgentTypeWorker       AgentType = "worker"
	AgentTypeEvaluator    AgentType = "evaluator"
	AgentTypeOrchestrator AgentType = "orchestrator"
)

// Disaster categories produced by the planner's keyword classifier.
const (
	DisasterEarthquake = "earthquake"
	DisasterFlood      = "flood"
	DisasterCyclone    = "cyclone"
	DisasterFire       = "fire"
	DisasterHeatwave   = "heatwave"
	DisasterLandslide  = "landslide"
	DisasterGeneric    = "generic"
)

// Phases describing the user's temporal relation to the disaster event.
const (
	PhasePreparedness = "preparedness"
	PhaseDuring       = "during"
	PhaseRecovery     = "recovery"
)

// RegionGeneric is the fallback when the session profile carries no region.
const RegionGeneric = "generic"

// ProfileKeyRegion is the user-profile key the planner reads the region from.
const ProfileKeyRegion = "region"

// Session state keys written by the planner after classification.
const (
	StateKeyLastDisasterType = "last_disaster_type"
	StateKeyLastPhase        = "last_phase"
)

// PlanPayload is the planner's output: the classified situation plus the
// advisory objectives and tool names for the worker. The tool list is
// non-binding metadata; the worker invokes its collaborators directly.
type PlanPayload struct {
	DisasterType string   `json:"disaster_type"`
	Phase        string   `json:"phase"`
	Region       string   `json:"region"`
	Objectives   []string `json:"objectives"`
	ToolCalls    []string `json:"tool_calls"`
	RawInput     string   `json:"raw_user_input"`
}

func (PlanPayload) MessageType() protocolx.MessageType {
	return protocolx.MessageTypePlanResult
}

func (p PlanPayload) Validate() error {
	if strings.TrimSpace(p.DisasterType) == "" {
		return fmt.Errorf("%w: plan disaster_type is required", ErrValidation)
	}
	switch p.Phase {
	case PhasePreparedness, PhaseDuring, PhaseRecovery:
	default:
		return fmt.Errorf("%w: unknown phase %q", ErrValidation, p.Phase)
	}
	if strings.TrimSpace(p.Region) == "" {
		return fmt.Errorf("%w: plan region is required", ErrValidation)
	}
	return nil
}

// DraftPayload carries the worker's composed response text alongside the
// classification fields, forwarded unchanged from the plan.
type DraftPayload struct {
	DraftResponse string `json:"draft_response"`
	DisasterType  string `json:"disaster_type"`
	Phase         string `json:"phase"`
	Region        string `json:"region"`
	RawInput      string `json:"raw_user_input"`
}

func (DraftPayload) MessageType() protocolx.MessageType {
	return protocolx.MessageTypeWorkResult
}

func (d DraftPayload) Validate() error {
	if strings.TrimSpace(d.DisasterType) == "" {
		return fmt.Errorf("%w: draft disaster_type is required", ErrValidation)
	}
	if strings.TrimSpace(d.Phase) == "" {
		return fmt.Errorf("%w: draft phase is required", ErrValidation)
	}
	return nil
}

// EvalStatus is the evaluator's verdict. The current design has no
// rejection branch; every draft comes back approved.
type EvalStatus string

const EvalStatusApproved EvalStatus = "approved"

// EvalPayload is the evaluator's terminal output for one turn.
type EvalPayload struct {
	Status        EvalStatus `json:"status"`
	FinalResponse string     `json:"final_response"`
	DisasterType  string     `json:"disaster_type"`
	Phase         string     `json:"phase"`
	Region        string     `json:"region"`
}

func (EvalPayload) MessageType() protocolx.MessageType {
	return protocolx.MessageTypeEvalResult
}

func (e EvalPayload) Validate() error {
	if e.Status != EvalStatusApproved {
		return fmt.Errorf("%w: unknown evaluation status %q", ErrValidation, e.Status)
	}
	if strings.TrimSpace(e.FinalResponse) == "" {
		return fmt.Errorf("%w: final response is required", ErrValidation)
	}
	return nil
}

// GuidanceRequest is the narrow contract handed to the text-generation
// collaborator.
type GuidanceRequest struct {
	DisasterType string `json:"disaster_type"`
	Phase        string `json:"phase"`
	Region       string `json:"region"`
	RawInput     string `json:"raw_input"`
}

// ToolResult is the outcome of one catalog tool execution.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
