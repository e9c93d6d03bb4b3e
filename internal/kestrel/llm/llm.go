// Package llm constructs the chat model the agent loop runs against.
// The service is opaque: anything speaking the OpenAI-compatible chat
// completion API with tool calling satisfies the contract.
package llm

import (
	"context"
	"fmt"

	"github.com/bytedance/gg/gptr"
	einoOpenAI "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/kestrelworks/kestrel/internal/pkg/options"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// NewChatModel builds a tool-calling chat model from the model options.
// A missing credential or a non-tool-capable model is a startup fault.
func NewChatModel(ctx context.Context, opts *options.ModelOptions) (model.ToolCallingChatModel, error) {
	if errs := opts.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid model configuration: %v", errs)
	}

	cfg := &einoOpenAI.ChatModelConfig{
		Model:       opts.Model,
		APIKey:      options.ResolveEnvValue(opts.APIKey),
		MaxTokens:   gptr.Of(opts.MaxTokens),
		Temperature: gptr.Of(opts.Temperature),
		Timeout:     opts.Timeout,
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	cm, err := einoOpenAI.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	var base model.BaseChatModel = cm
	tcm, ok := base.(model.ToolCallingChatModel)
	if !ok {
		return nil, fmt.Errorf("model %q does not support tool calling", opts.Model)
	}

	logger.Info("[LLM] using model %q at %s", opts.Model, opts.BaseURL)
	return tcm, nil
}
