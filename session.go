package prompt

import "fmt"

// Session orchestrates a sequence of prompts on a single terminal. It owns
// raw mode for its whole lifetime, so intermixed writes from other goroutines
// will corrupt the display.
//
// A typical session:
//
//	term, err := prompt.NewTerminal()
//	if err != nil {
//		return err
//	}
//	defer term.Close()
//
//	s := prompt.NewSession(term, prompt.NewFancyTheme())
//	if err := s.Begin("Setup"); err != nil {
//		return err
//	}
//	name, err := prompt.Run(s, prompt.NewInput("Project name"))
//	if err != nil {
//		return err
//	}
//	return s.Finish("Done")
type Session struct {
	driver   Driver
	theme    Theme
	renderer *renderer
	state    State
	started  bool
	finished bool
	running  bool
}

// NewSession creates a session on the given driver. A nil theme defaults to
// MinimalTheme.
func NewSession(driver Driver, theme Theme) *Session {
	if theme == nil {
		theme = NewMinimalTheme()
	}
	return &Session{
		driver:   driver,
		theme:    theme,
		renderer: newRenderer(driver),
		state:    StateActive,
	}
}

// Begin switches the terminal into raw mode, hides the hardware cursor, and
// prints the theme's intro banner. It must be called before the first prompt
// runs; Run calls it automatically with an empty title when it was not.
func (s *Session) Begin(title string) error {
	if s.started {
		return configErrorf("session already started")
	}
	if err := s.driver.SetRaw(); err != nil {
		return fmt.Errorf("prompt: enter raw mode: %w", err)
	}
	// Any failure past this point must release raw mode again.
	if _, err := s.driver.Write([]byte("\x1b[?25l")); err != nil {
		_ = s.teardown()
		return fmt.Errorf("prompt: hide cursor: %w", err)
	}
	s.started = true
	if err := s.renderer.lines(s.theme.Intro(title)); err != nil {
		s.finished = true
		_ = s.teardown()
		return err
	}
	return nil
}

// Finish prints the theme's outro, restores the hardware cursor, and leaves
// raw mode. Calling it more than once is harmless.
func (s *Session) Finish(title string) error {
	if !s.started || s.finished {
		return nil
	}
	s.finished = true
	outroErr := s.renderer.lines(s.theme.Outro(title, s.state))
	if err := s.teardown(); err != nil {
		return err
	}
	return outroErr
}

// teardown restores the terminal. The raw-mode release runs even when the
// cursor-restoring writes fail, so no exit path leaves the terminal raw.
func (s *Session) teardown() error {
	_, writeErr := s.driver.Write([]byte("\x1b[?25h"))
	flushErr := s.driver.Flush()
	if err := s.driver.Restore(); err != nil {
		return fmt.Errorf("prompt: leave raw mode: %w", err)
	}
	if writeErr != nil {
		return fmt.Errorf("prompt: show cursor: %w", writeErr)
	}
	return flushErr
}

// Run executes a single prompt to completion on the session and returns its
// submitted value. Canceling with Esc or Ctrl+C returns ErrCancel after the
// session has been torn down. Only one prompt may run at a time.
func Run[T any](s *Session, p Prompt[T]) (T, error) {
	var zero T
	if s.finished {
		return zero, configErrorf("session already finished")
	}
	if s.running {
		return zero, configErrorf("another prompt is running")
	}
	if !s.started {
		if err := s.Begin(""); err != nil {
			return zero, err
		}
	}
	s.running = true
	defer func() { s.running = false }()

	if sp, ok := any(p).(setupPrompt); ok {
		if err := sp.Setup(); err != nil {
			return zero, err
		}
	}

	state := StateActive
	for {
		if err := s.renderer.draw(s.theme.Render(p.Render(state), state, false)); err != nil {
			return zero, s.fail(err)
		}
		key, err := s.driver.ReadKey()
		if err != nil {
			return zero, s.fail(fmt.Errorf("prompt: read input: %w", err))
		}
		if cancelKey(key) {
			state = StateCancel
		} else {
			state = p.Handle(key)
		}
		if state == StateActive {
			continue
		}
		s.state = state
		if err := s.renderer.finish(s.theme.Render(p.Render(state), state, true)); err != nil {
			return zero, s.fail(err)
		}
		if state == StateCancel {
			if err := s.Finish(""); err != nil {
				return zero, err
			}
			return zero, ErrCancel
		}
		return p.Submit(), nil
	}
}

// fail tears the terminal down after an I/O error so the shell is usable
// again, then reports the original error.
func (s *Session) fail(err error) error {
	s.finished = true
	_ = s.teardown()
	return err
}

// Log prints a plain message between prompts in the session's theme.
func (s *Session) Log(message string) error {
	return s.line(LevelLog, message)
}

// Info prints an informational message between prompts.
func (s *Session) Info(message string) error {
	return s.line(LevelInfo, message)
}

// Warn prints a warning message between prompts.
func (s *Session) Warn(message string) error {
	return s.line(LevelWarn, message)
}

// Error prints an error message between prompts.
func (s *Session) Error(message string) error {
	return s.line(LevelError, message)
}

// Success prints a success message between prompts.
func (s *Session) Success(message string) error {
	return s.line(LevelSuccess, message)
}

// Step prints a step heading between prompts.
func (s *Session) Step(message string) error {
	return s.line(LevelStep, message)
}

func (s *Session) line(level MessageLevel, message string) error {
	return s.renderer.lines([]string{s.theme.Line(level, message)})
}
