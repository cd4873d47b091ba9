package config

import (
	"fmt"
)

// Validate checks the loaded configuration for values that would only
// surface as confusing runtime failures later. Missing API keys are
// not errors: a keyless provider simply runs disabled and every
// request takes the template path.
func (c *Config) Validate() error {
	switch c.Completion.Provider {
	case "openai", "gemini", "none", "":
	default:
		return fmt.Errorf("completion.provider must be one of openai, gemini or none, got %q", c.Completion.Provider)
	}

	if c.Completion.TimeoutSeconds < 0 {
		return fmt.Errorf("completion.timeout_seconds must not be negative, got %d", c.Completion.TimeoutSeconds)
	}

	if c.Server.Port != "" {
		for _, r := range c.Server.Port {
			if r < '0' || r > '9' {
				return fmt.Errorf("server.port must be numeric, got %q", c.Server.Port)
			}
		}
	}
	return nil
}
