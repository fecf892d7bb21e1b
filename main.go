package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	agentsx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents"
	orchestratorx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/agents/orchestrator"
	contractx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/contract"
	llmx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/llm"
	memoryx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/memory"
	toolx "github.com/poojitha01-5/Crisis-Info-Navigator/agent/tool"
	configx "github.com/poojitha01-5/Crisis-Info-Navigator/pkg/config"
	_ "github.com/poojitha01-5/Crisis-Info-Navigator/pkg/logger/autoload"
)

type AppConfig struct {
	SessionID string `envconfig:"SESSION_ID" default:"default"`
	Region    string `envconfig:"USER_REGION"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")
	llmCfg := configx.MustNew[llmx.Config]("LLM")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := llmx.NewGenerator(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize guidance backend")
	}

	store := memoryx.NewStore()
	if region := strings.TrimSpace(appCfg.Region); region != "" {
		store.UpdateUserProfile(appCfg.SessionID, map[string]any{
			contractx.ProfileKeyRegion: region,
		})
	}

	registry, err := agentsx.NewRegistry(store, generator, toolx.NewDirectory())
	if err != nil {
		log.Fatal().Err(err).Msg("build agent registry")
	}

	orchestrator, err := orchestratorx.New(registry, orchestratorx.Config{
		DefaultSessionID: appCfg.SessionID,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build orchestrator")
	}

	fmt.Println("CrisisInfo Navigator. Type 'exit' to quit.")
	runChatLoop(ctx, orchestrator, appCfg.SessionID)
}

func runChatLoop(ctx context.Context, orchestrator *orchestratorx.Orchestrator, sessionID string) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println("Exiting.")
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			fmt.Println("Goodbye.")
			return
		}

		res, err := orchestrator.HandleMessage(ctx, sessionID, line)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Println("Exiting.")
				return
			}
			log.Error().Err(err).Msg("turn failed")
			fmt.Println("Agent: Something went wrong. Please try again.")
			continue
		}
		fmt.Printf("Agent: %s\n", res.Response)
	}
}
