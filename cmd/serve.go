package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studybuddy_backend/internal/agent"
	"studybuddy_backend/internal/config"
	"studybuddy_backend/internal/llm"
	"studybuddy_backend/internal/plot"
	"studybuddy_backend/internal/server"
	"studybuddy_backend/internal/student"
	"studybuddy_backend/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe wires the store, tools, provider and agent, then serves
// until interrupted.
func runServe(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(cfg.Log.File, cfg.Server.Mode == "debug")
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	def, err := agent.LoadDefinition(cfg.Agent.Definition)
	if err != nil {
		return fmt.Errorf("load agent definition: %w", err)
	}
	prompt, err := def.LoadPrompt(cfg.Agent.Definition)
	if err != nil {
		return fmt.Errorf("load agent prompt: %w", err)
	}

	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}
		llmCfg = discovered
	}
	if def.Model != "" {
		applyModel(&llmCfg, def.Model)
	}
	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}

	store := student.NewStore(cfg.Data.StudentPath(), log)
	renderer := plot.NewRenderer(cfg.Data.VisualizationsDir(), log)

	registry := agent.NewRegistry()
	agent.RegisterStudentTools(registry, store)
	agent.RegisterCalcTools(registry)
	agent.RegisterPlotTools(registry, renderer)

	a, err := agent.New(def, prompt, provider, registry, agent.NewSessionService(), log)
	if err != nil {
		return fmt.Errorf("create agent: %w", err)
	}

	log.Info("starting studybuddy",
		zap.String("agent", a.Name()),
		zap.String("provider", llmCfg.Provider),
		zap.String("model", provider.ModelID()),
		zap.Int("tools", len(a.Tools())))

	return server.New(cfg, a, log).Run(ctx)
}

// applyModel points the selected provider at the definition's model.
func applyModel(cfg *llm.Config, model string) {
	switch cfg.Provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	case "openrouter":
		cfg.OpenRouter.Model = model
	}
}
