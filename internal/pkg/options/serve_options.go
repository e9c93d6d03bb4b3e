package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// ServeOptions configures how a tool server exposes itself.
type ServeOptions struct {
	// Transport is "stdio" (subprocess pipe) or "sse" (HTTP).
	Transport string `json:"transport" mapstructure:"transport"`

	// Host and Port are only meaningful for the sse transport.
	Host string `json:"host" mapstructure:"host"`
	Port int    `json:"port" mapstructure:"port"`
}

// NewServeOptions creates ServeOptions with the given default port.
func NewServeOptions(defaultPort int) *ServeOptions {
	return &ServeOptions{
		Transport: "stdio",
		Host:      "127.0.0.1",
		Port:      defaultPort,
	}
}

// Validate checks the serving configuration.
func (o *ServeOptions) Validate() []error {
	var errs []error
	if o.Transport != "stdio" && o.Transport != "sse" {
		errs = append(errs, fmt.Errorf("unsupported transport %q (must be 'stdio' or 'sse')", o.Transport))
	}
	if o.Transport == "sse" {
		if o.Host == "" {
			errs = append(errs, fmt.Errorf("host is required for sse transport"))
		}
		if o.Port <= 0 || o.Port > 65535 {
			errs = append(errs, fmt.Errorf("port %d is out of range", o.Port))
		}
	}
	return errs
}

// Addr returns the host:port listen address for the sse transport.
func (o *ServeOptions) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// AddFlags registers the serving flags.
func (o *ServeOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Transport, "transport", o.Transport, "Transport to serve on: 'stdio' or 'sse'.")
	fs.StringVar(&o.Host, "host", o.Host, "Bind host for the sse transport.")
	fs.IntVar(&o.Port, "port", o.Port, "Bind port for the sse transport.")
}
