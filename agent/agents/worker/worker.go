package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	protocolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/protocol"
)

const (
	defaultMaxRetries      = 2
	defaultInitialInterval = 500 * time.Millisecond
)

const hotlineTitle = "Emergency contacts (verify for your exact location):"

type Option func(*Worker)

// WithMaxRetries bounds how many times a failed guidance call is retried.
func WithMaxRetries(n uint64) Option {
	return func(w *Worker) {
		w.maxRetries = n
	}
}

// WithRetryInterval overrides the initial backoff interval.
func WithRetryInterval(d time.Duration) Option {
	return func(w *Worker) {
		if d > 0 {
			w.retryInterval = d
		}
	}
}

// Worker executes a plan message: it calls the guidance and hotline
// collaborators and composes the draft response for the evaluator.
type Worker struct {
	guidance      contractx.GuidanceGenerator
	hotlines      contractx.HotlineDirectory
	maxRetries    uint64
	retryInterval time.Duration
}

func New(guidance contractx.GuidanceGenerator, hotlines contractx.HotlineDirectory, opts ...Option) (*Worker, error) {
	if guidance == nil {
		return nil, errors.New("guidance generator is required")
	}
	if hotlines == nil {
		return nil, errors.New("hotline directory is required")
	}

	w := &Worker{
		guidance:      guidance,
		hotlines:      hotlines,
		maxRetries:    defaultMaxRetries,
		retryInterval: defaultInitialInterval,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w, nil
}

func (w *Worker) Execute(ctx context.Context, planMsg protocolx.Message) (protocolx.Message, error) {
	plan, ok := planMsg.Payload.(contractx.PlanPayload)
	if !ok {
		return protocolx.Message{}, fmt.Errorf("%w: expected plan payload, got %T", contractx.ErrValidation, planMsg.Payload)
	}

	disasterType := orDefault(plan.DisasterType, contractx.DisasterGeneric)
	phase := orDefault(plan.Phase, contractx.PhasePreparedness)
	region := orDefault(plan.Region, contractx.RegionGeneric)

	draft := ""
	guidance, err := w.generateWithRetry(ctx, contractx.GuidanceRequest{
		DisasterType: disasterType,
		Phase:        phase,
		Region:       region,
		RawInput:     plan.RawInput,
	})
	switch {
	case err == nil:
		draft = composeDraft(disasterType, phase, guidance, w.hotlines.Lookup(region))
	case errors.Is(err, contractx.ErrMissingCredential):
		// configuration error, not a pipeline error: abort the turn
		return protocolx.Message{}, err
	default:
		// Empty or failed guidance becomes an empty draft; the evaluator
		// substitutes the fixed fallback safety message.
		log.Warn().
			Str("trace_id", planMsg.TraceID).
			Err(err).
			Msg("guidance unavailable, forwarding empty draft")
	}

	payload := contractx.DraftPayload{
		DraftResponse: draft,
		DisasterType:  disasterType,
		Phase:         phase,
		Region:        region,
		RawInput:      plan.RawInput,
	}

	return protocolx.New(
		string(contractx.AgentTypeWorker),
		string(contractx.AgentTypeEvaluator),
		payload,
		planMsg.TraceID,
		nil,
	)
}

func (w *Worker) generateWithRetry(ctx context.Context, req contractx.GuidanceRequest) (string, error) {
	var text string
	operation := func() error {
		out, err := w.guidance.Generate(ctx, req)
		if err != nil {
			if errors.Is(err, contractx.ErrEmptyGuidance) || errors.Is(err, contractx.ErrMissingCredential) {
				return backoff.Permanent(err)
			}
			return err
		}
		text = out
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = w.retryInterval

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, w.maxRetries), ctx))
	if err != nil {
		return "", err
	}
	return text, nil
}

func composeDraft(disasterType, phase, guidance string, hotlines map[string]string) string {
	if strings.TrimSpace(guidance) == "" {
		return ""
	}

	header := fmt.Sprintf("Here is some basic non-medical guidance for a %s (%s phase):", disasterType, phase)
	sections := []string{header, guidance}
	if block := formatHotlines(hotlines); block != "" {
		sections = append(sections, block)
	}
	return strings.Join(sections, "\n\n")
}

func formatHotlines(hotlines map[string]string) string {
	if len(hotlines) == 0 {
		return ""
	}

	labels := make([]string, 0, len(hotlines))
	for label := range hotlines {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := []string{hotlineTitle}
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("- %s: %s", titleize(label), hotlines[label]))
	}
	return strings.Join(lines, "\n")
}

// titleize turns an identifier-style label into a human-readable title,
// e.g. "general_emergency" -> "General Emergency".
func titleize(label string) string {
	words := strings.Split(strings.ReplaceAll(label, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
