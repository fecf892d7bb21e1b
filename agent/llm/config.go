package llm

import (
	"context"
	"fmt"
	"strings"

	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	configx "github.com/poojitha01-5/Crisis-Info-Navigator/pkg/config"
	geminix "github.com/poojitha01-5/Crisis-Info-Navigator/pkg/gemini"
	openrouterx "github.com/poojitha01-5/Crisis-Info-Navigator/pkg/openrouter"
)

type Backend string

const (
	BackendGemini     Backend = "gemini"
	BackendOpenRouter Backend = "openrouter"
)

type Config struct {
	Backend string `envconfig:"BACKEND" split_words:"true" default:"gemini"`
}

func (c Config) Validate() error {
	switch Backend(strings.ToLower(strings.TrimSpace(c.Backend))) {
	case BackendGemini, BackendOpenRouter:
		return nil
	default:
		return fmt.Errorf("%w: unknown guidance backend %q", contractx.ErrValidation, c.Backend)
	}
}

// NewGenerator builds the configured guidance backend. Only the chosen
// backend's credentials are loaded, so an unused backend's missing key is
// not a configuration error.
func NewGenerator(ctx context.Context, cfg Config) (contractx.GuidanceGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch Backend(strings.ToLower(strings.TrimSpace(cfg.Backend))) {
	case BackendOpenRouter:
		backendCfg, err := configx.New[openrouterx.Config]("OPENROUTER")
		if err != nil {
			return nil, fmt.Errorf("%w: load openrouter config: %v", contractx.ErrMissingCredential, err)
		}
		return openrouterx.New(*backendCfg)
	default:
		backendCfg, err := configx.New[geminix.Config]("GEMINI")
		if err != nil {
			return nil, fmt.Errorf("%w: load gemini config: %v", contractx.ErrMissingCredential, err)
		}
		return geminix.New(ctx, *backendCfg)
	}
}
