package di

import (
	"fmt"
	"time"

	"chat-agent/internal/adapter/tool"
	"chat-agent/internal/application/port/input"
	"chat-agent/internal/application/port/output"
	"chat-agent/internal/application/service"
	"chat-agent/internal/infrastructure/llm/openaichat"
	"chat-agent/internal/infrastructure/logger"
	"chat-agent/internal/infrastructure/prompts"
	"chat-agent/internal/infrastructure/search"
	"chat-agent/internal/infrastructure/userinteraction"
	"chat-agent/internal/usecase/chat"
)

type Container struct {
	LLM     output.LLMPort
	Logger  output.LoggerPort
	Tools   output.ToolRegistry
	Session input.ChatSession
	UI      output.UserInteractionPort
}

type Config struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string
	Model         string
	TavilyAPIKey  string
	SystemPrompt  string
	MaxToolRounds int
	ModelTimeout  time.Duration
	Debug         bool
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llmCfg := openaichat.DefaultConfig(cfg.OpenAIAPIKey, cfg.Model)
	llmCfg.BaseURL = cfg.OpenAIBaseURL
	llmCfg.Logger = log
	if cfg.ModelTimeout > 0 {
		llmCfg.Timeout = cfg.ModelTimeout
	}
	llm := openaichat.NewAdapter(llmCfg)

	var searchProvider output.SearchPort
	if cfg.TavilyAPIKey != "" {
		searchProvider = search.NewTavilyClient(cfg.TavilyAPIKey, log)
		log.Info("Search provider configured", "provider", "tavily")
	} else {
		searchProvider = search.NewDuckDuckGoClient(log)
		log.Info("Search provider configured", "provider", "duckduckgo")
	}

	tools := service.NewToolRegistry()
	tools.Register(tool.NewCalculatorTool(log))
	tools.Register(tool.NewClockTool(time.Now, log))
	tools.Register(tool.NewWebSearchTool(searchProvider, log))

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = prompts.DefaultSystemPrompt
	}

	ui := userinteraction.NewConsole()

	opts := []chat.Option{chat.WithUserInteraction(ui)}
	if cfg.MaxToolRounds > 0 {
		opts = append(opts, chat.WithMaxToolRounds(cfg.MaxToolRounds))
	}
	session := chat.NewSession(llm, tools, log, systemPrompt, opts...)

	return &Container{
		LLM:     llm,
		Logger:  log,
		Tools:   tools,
		Session: session,
		UI:      ui,
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
