package planner

import (
	"errors"
	"strings"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	memoryx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/memory"
	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
	toolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/tool"
)

// Ordered hazard vocabulary; the first matching category wins, so
// earthquake outranks every other keyword in the same input.
var disasterVocabulary = []struct {
	category string
	keywords []string
}{
	{contractx.DisasterEarthquake, []string{"earthquake"}},
	{contractx.DisasterFlood, []string{"flood", "flooding"}},
	{contractx.DisasterCyclone, []string{"cyclone", "hurricane", "typhoon"}},
	{contractx.DisasterFire, []string{"fire", "wildfire"}},
	{contractx.DisasterHeatwave, []string{"heatwave", "heat wave", "extreme heat"}},
	{contractx.DisasterLandslide, []string{"landslide", "mudslide"}},
}

// Ordered phase keyword groups; the first group with any match wins.
var phaseGroups = []struct {
	phase    string
	keywords []string
}{
	{contractx.PhaseDuring, []string{"now", "right now", "happening", "currently", "during"}},
	{contractx.PhaseRecovery, []string{"after", "aftermath", "recovery", "post"}},
	{contractx.PhasePreparedness, []string{"prepare", "before", "ready", "readiness", "might happen"}},
}

var planObjectives = []string{
	"Provide concise, step-by-step non-medical safety guidance.",
	"Mention emergency hotlines if available.",
}

// Advisory only; the worker invokes its collaborators unconditionally.
var planToolCalls = []string{
	toolx.ToolGuidanceGenerate,
	toolx.ToolHotlineLookup,
}

// Planner classifies the user query and produces the plan message for the
// worker. Classification is a deterministic keyword pass; the only side
// effect is recording the last classification in session state.
type Planner struct {
	store *memoryx.Store
}

func New(store *memoryx.Store) (*Planner, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	return &Planner{store: store}, nil
}

func (p *Planner) Plan(sessionID, userInput, traceID string) (protocolx.Message, error) {
	disasterType := classifyDisasterType(userInput)
	phase := classifyPhase(userInput)

	region := contractx.RegionGeneric
	if v, ok := p.store.UserProfile(sessionID)[contractx.ProfileKeyRegion].(string); ok && strings.TrimSpace(v) != "" {
		region = v
	}

	p.store.UpdateState(sessionID, map[string]any{
		contractx.StateKeyLastDisasterType: disasterType,
		contractx.StateKeyLastPhase:        phase,
	})

	payload := contractx.PlanPayload{
		DisasterType: disasterType,
		Phase:        phase,
		Region:       region,
		Objectives:   planObjectives,
		ToolCalls:    planToolCalls,
		RawInput:     userInput,
	}

	return protocolx.New(
		string(contractx.AgentTypePlanner),
		string(contractx.AgentTypeWorker),
		payload,
		traceID,
		nil,
	)
}

func classifyDisasterType(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range disasterVocabulary {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return contractx.DisasterGeneric
}

func classifyPhase(text string) string {
	lower := strings.ToLower(text)
	for _, group := range phaseGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.phase
			}
		}
	}
	return contractx.PhasePreparedness
}
