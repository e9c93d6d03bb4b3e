// Package agent implements the tool-calling conversation loop: ask the
// model, execute any requested tools in order, feed results back, repeat
// until the model answers in plain text or the step cap is reached.
package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"

	"github.com/kestrelworks/kestrel/internal/pkg/tools"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// DefaultMaxSteps bounds the think→act cycles of a single turn so a model
// that keeps requesting tools cannot loop forever.
const DefaultMaxSteps = 10

// Config assembles an Agent.
type Config struct {
	// Model is the tool-calling chat model. The agent binds the
	// registry's tool specs onto it at construction time.
	Model model.ToolCallingChatModel

	// Registry resolves and executes the tools the model may request.
	Registry *tools.Registry

	// SystemPrompt, when non-empty, opens the conversation.
	SystemPrompt string

	// MaxSteps caps the tool-calling cycles per turn. Zero or negative
	// selects DefaultMaxSteps.
	MaxSteps int

	// OnToolCall, when set, is invoked before each tool execution.
	// Used by the CLI to surface tool activity as it happens.
	OnToolCall func(name, arguments string)
}

// ToolUse records one executed tool call within a turn.
type ToolUse struct {
	Name      string
	Arguments string
	Result    string
}

// Turn is the outcome of one user request.
type Turn struct {
	Answer   string
	ToolUses []ToolUse

	// StepLimited reports that the turn was cut off at the step cap
	// instead of ending with a model answer.
	StepLimited bool
}

// Agent owns one conversation. It is not safe for concurrent use: one
// turn runs at a time, and the history belongs to that single loop.
type Agent struct {
	sessionID  string
	model      model.ToolCallingChatModel
	registry   *tools.Registry
	maxSteps   int
	onToolCall func(name, arguments string)

	history []*schema.Message
	system  string
}

// New builds an Agent and binds the registry's tool specs to the model.
func New(cfg Config) (*Agent, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("agent: model is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("agent: tool registry is required")
	}

	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	m := cfg.Model
	if specs := cfg.Registry.Specs(); len(specs) > 0 {
		bound, err := cfg.Model.WithTools(specs)
		if err != nil {
			return nil, fmt.Errorf("agent: failed to bind %d tools to model: %w", len(specs), err)
		}
		m = bound
	}

	a := &Agent{
		sessionID:  uuid.NewString(),
		model:      m,
		registry:   cfg.Registry,
		maxSteps:   maxSteps,
		onToolCall: cfg.OnToolCall,
		system:     cfg.SystemPrompt,
	}
	a.Reset()

	logger.Info("[Agent] session %s ready with %d tools, max_steps=%d",
		a.sessionID, cfg.Registry.Len(), maxSteps)
	return a, nil
}

// SessionID identifies this conversation in logs.
func (a *Agent) SessionID() string {
	return a.sessionID
}

// Reset clears the conversation history.
func (a *Agent) Reset() {
	a.history = a.history[:0]
	if a.system != "" {
		a.history = append(a.history, schema.SystemMessage(a.system))
	}
}

// Run executes one user turn. Tool calls are executed strictly in the
// order the model requested them, one at a time, each result appended to
// the conversation before the model is consulted again. Tool failures
// come back as text; only model/transport faults are returned as errors,
// and then the turn's messages are not committed to history.
func (a *Agent) Run(ctx context.Context, input string) (*Turn, error) {
	msgs := make([]*schema.Message, len(a.history), len(a.history)+2)
	copy(msgs, a.history)
	msgs = append(msgs, schema.UserMessage(input))

	turn := &Turn{}

	for step := 0; step < a.maxSteps; step++ {
		out, err := a.model.Generate(ctx, msgs)
		if err != nil {
			return nil, fmt.Errorf("model request failed: %w", err)
		}
		msgs = append(msgs, out)

		if len(out.ToolCalls) == 0 {
			turn.Answer = out.Content
			a.history = msgs
			return turn, nil
		}

		for _, tc := range out.ToolCalls {
			if a.onToolCall != nil {
				a.onToolCall(tc.Function.Name, tc.Function.Arguments)
			}
			logger.Debug("[Agent] session %s step %d: tool %s(%s)",
				a.sessionID, step, tc.Function.Name, tc.Function.Arguments)

			result := a.registry.Execute(ctx, tc.Function.Name, tc.Function.Arguments)
			turn.ToolUses = append(turn.ToolUses, ToolUse{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
				Result:    result,
			})

			msgs = append(msgs, &schema.Message{
				Role:       schema.Tool,
				Content:    result,
				ToolCallID: tc.ID,
				ToolName:   tc.Function.Name,
			})
		}
	}

	logger.Warn("[Agent] session %s hit the %d-step cap without a final answer", a.sessionID, a.maxSteps)
	turn.StepLimited = true
	turn.Answer = fmt.Sprintf("Stopped after %d tool-calling steps without reaching a final answer.", a.maxSteps)
	a.history = msgs
	return turn, nil
}
