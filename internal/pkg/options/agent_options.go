package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// AgentOptions configures the conversation loop.
type AgentOptions struct {
	// MaxSteps caps think→act cycles per user turn.
	MaxSteps int `json:"max-steps" mapstructure:"max-steps"`
}

// NewAgentOptions creates AgentOptions with defaults.
func NewAgentOptions() *AgentOptions {
	return &AgentOptions{MaxSteps: 10}
}

// Validate checks the agent configuration.
func (o *AgentOptions) Validate() []error {
	var errs []error
	if o.MaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("agent.max-steps must be positive, got %d", o.MaxSteps))
	}
	return errs
}

// AddFlags registers the agent flags.
func (o *AgentOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxSteps, "agent.max-steps", o.MaxSteps, "Maximum tool-calling steps per turn.")
}
