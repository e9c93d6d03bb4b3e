package options

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ModelOptions configures the chat-completion service the agent talks to.
// Any OpenAI-compatible endpoint works.
type ModelOptions struct {
	BaseURL     string        `json:"base-url" mapstructure:"base-url"`
	APIKey      string        `json:"api-key" mapstructure:"api-key"`
	Model       string        `json:"model" mapstructure:"model"`
	MaxTokens   int           `json:"max-tokens" mapstructure:"max-tokens"`
	Temperature float32       `json:"temperature" mapstructure:"temperature"`
	Timeout     time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewModelOptions creates ModelOptions with defaults. The API key is an
// env reference so credentials never live in config files.
func NewModelOptions() *ModelOptions {
	return &ModelOptions{
		BaseURL:     "https://api.openai.com/v1",
		APIKey:      "${OPENAI_API_KEY}",
		Model:       "gpt-4o-mini",
		MaxTokens:   1000,
		Temperature: 0.1,
		Timeout:     120 * time.Second,
	}
}

// Validate checks that the model configuration is usable. A missing
// credential is a startup fault, not something to discover mid-session.
func (o *ModelOptions) Validate() []error {
	var errs []error
	if o.Model == "" {
		errs = append(errs, fmt.Errorf("model.model is required"))
	}
	if ResolveEnvValue(o.APIKey) == "" {
		errs = append(errs, fmt.Errorf("model API key is not configured (set %s or model.api-key)", envName(o.APIKey)))
	}
	return errs
}

// AddFlags registers the model flags.
func (o *ModelOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BaseURL, "model.base-url", o.BaseURL, "Base URL of the OpenAI-compatible chat completion endpoint.")
	fs.StringVar(&o.APIKey, "model.api-key", o.APIKey, "API key, or a ${ENV_VAR} reference to one.")
	fs.StringVar(&o.Model, "model.model", o.Model, "Model identifier to request.")
	fs.IntVar(&o.MaxTokens, "model.max-tokens", o.MaxTokens, "Maximum tokens per completion.")
	fs.Float32Var(&o.Temperature, "model.temperature", o.Temperature, "Sampling temperature.")
	fs.DurationVar(&o.Timeout, "model.timeout", o.Timeout, "Per-request timeout for model calls.")
}

// ResolveEnvValue resolves "${ENV_VAR}" references in a string.
func ResolveEnvValue(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return os.Getenv(envKey)
	}
	return s
}

func envName(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return s[2 : len(s)-1]
	}
	return "the API key"
}
