// Package chat implements the tool-call orchestration loop for one
// conversation session.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"chat-agent/internal/application/port/input"
	"chat-agent/internal/application/port/output"
	"chat-agent/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

var _ input.ChatSession = (*Session)(nil)

const (
	defaultMaxToolRounds = 8
	maxObservationLen    = 8000
)

const (
	modelUnavailableAnswer = "I'm having trouble reaching the language model right now. " +
		"Please try again in a moment."
	toolLoopExceededAnswer = "I couldn't finish answering within the allowed number of tool " +
		"rounds. Please try rephrasing the question."
)

// Session owns the transcript of one conversation and drives the
// query-dispatch loop: model request, tool execution, result feedback,
// repeated until the model answers in plain text or the round budget runs out.
type Session struct {
	llm        output.LLMPort
	tools      output.ToolRegistry
	logger     output.LoggerPort
	ui         output.UserInteractionPort
	transcript *entity.Transcript
	maxRounds  int
}

type Option func(*Session)

func WithMaxToolRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

func WithUserInteraction(ui output.UserInteractionPort) Option {
	return func(s *Session) {
		s.ui = ui
	}
}

func NewSession(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	systemPrompt string,
	opts ...Option,
) *Session {
	transcript := entity.NewTranscript()
	transcript.Append(entity.Message{Role: entity.RoleSystem, Content: systemPrompt})

	s := &Session{
		llm:        llm,
		tools:      tools,
		logger:     logger,
		transcript: transcript,
		maxRounds:  defaultMaxToolRounds,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcript exposes the session history for inspection; the returned slice
// is a copy.
func (s *Session) Transcript() []entity.Message {
	return s.transcript.Messages()
}

// Submit runs one full user turn. Tool failures are surfaced to the model as
// failure results; a model failure or an exhausted round budget produces a
// degraded answer, never an aborted session.
func (s *Session) Submit(ctx context.Context, userText string) (*input.TurnResult, error) {
	s.transcript.Append(entity.Message{Role: entity.RoleUser, Content: userText})
	s.logger.Info("User turn started", "chars", len(userText))

	toolDefs := s.tools.Definitions()

	for round := 1; round <= s.maxRounds; round++ {
		if s.ui != nil {
			s.ui.ShowRound(round, s.maxRounds)
		}

		resp, err := s.llm.Chat(ctx, output.ChatRequest{
			Messages:    s.transcript.Messages(),
			Tools:       toolDefs,
			Temperature: 0.0,
		})
		if err != nil {
			s.logger.Error("Model request failed", "round", round, "error", err)
			s.transcript.Append(entity.Message{Role: entity.RoleAssistant, Content: modelUnavailableAnswer})
			return &input.TurnResult{Answer: modelUnavailableAnswer, Rounds: round, Degraded: true}, nil
		}

		s.transcript.Append(resp.Message)

		if len(resp.Message.ToolCalls) == 0 {
			s.logger.Info("User turn completed", "rounds", round)
			return &input.TurnResult{Answer: resp.Message.Content, Rounds: round}, nil
		}

		for _, result := range s.dispatch(ctx, resp.Message.ToolCalls) {
			s.transcript.Append(entity.Message{
				Role:       entity.RoleTool,
				ToolCallID: result.CallID,
				Name:       result.ToolName,
				Content:    result.Content,
			})
		}
	}

	s.logger.Error("Tool round budget exhausted", "maxRounds", s.maxRounds,
		"error", entity.ErrToolLoopExceeded)
	s.transcript.Append(entity.Message{Role: entity.RoleAssistant, Content: toolLoopExceededAnswer})
	return &input.TurnResult{Answer: toolLoopExceededAnswer, Rounds: s.maxRounds, Degraded: true}, nil
}

// dispatch executes the calls of one model response concurrently. Each call
// writes into its own slot, so results come back in request order no matter
// which executor finishes first.
func (s *Session) dispatch(ctx context.Context, calls []entity.ToolCall) []entity.ToolResult {
	results := make([]entity.ToolResult, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, tc := range calls {
		i, tc := i, tc
		g.Go(func() error {
			results[i] = s.executeCall(gctx, tc)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Session) executeCall(ctx context.Context, tc entity.ToolCall) (result entity.ToolResult) {
	result = entity.ToolResult{CallID: tc.ID, ToolName: tc.Name}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Tool panicked", "name", tc.Name, "panic", r)
			result.IsError = true
			result.Content = fmt.Sprintf("Error: tool %q failed unexpectedly", tc.Name)
		}
	}()

	if s.ui != nil {
		s.ui.ShowToolStart(tc.Name, tc.Arguments)
	}

	content, err := s.runTool(ctx, tc)
	if err != nil {
		s.logger.Warn("Tool call failed", "name", tc.Name, "callID", tc.ID, "error", err)
		result.IsError = true
		result.Content = "Error: " + err.Error()
	} else {
		if len(content) > maxObservationLen {
			// Cut on a rune boundary so the tool message stays valid UTF-8.
			cut := maxObservationLen
			for cut > 0 && !utf8.RuneStart(content[cut]) {
				cut--
			}
			content = content[:cut] + "\n... (truncated)"
		}
		result.Content = content
		s.logger.Debug("Tool call completed", "name", tc.Name, "callID", tc.ID, "resultLen", len(content))
	}

	if s.ui != nil {
		s.ui.ShowToolResult(tc.Name, result.Content, result.IsError)
	}
	return result
}

func (s *Session) runTool(ctx context.Context, tc entity.ToolCall) (string, error) {
	// An interrupted turn abandons in-flight calls; their slots still get
	// recorded as failures so the transcript stays consistent.
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("call abandoned: %v", err)
	}

	tool, ok := s.tools.Get(entity.ToolName(tc.Name))
	if !ok {
		return "", fmt.Errorf("%w: %q", entity.ErrUnknownTool, tc.Name)
	}

	args := map[string]any{}
	if tc.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return "", fmt.Errorf("%w: malformed JSON: %v", entity.ErrInvalidArguments, err)
		}
	}
	if err := tool.Parameters().Validate(args); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrInvalidArguments, err)
	}

	return tool.Execute(ctx, args)
}
