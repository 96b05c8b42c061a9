package prompt

import (
	"errors"
	"fmt"
)

// ErrCancel is returned by Run when the user interrupts a prompt with
// Esc or Ctrl+C. It is an expected outcome, not a failure; callers usually
// match it with errors.Is and suppress further messaging.
var ErrCancel = errors.New("prompt: canceled")

// ConfigError reports invalid prompt construction parameters, such as an
// empty option list or min greater than max. It is detected before the first
// render, so a misconfigured prompt never produces partial terminal output.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("prompt: invalid configuration: %s", e.Reason)
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
