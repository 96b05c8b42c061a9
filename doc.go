// Package prompt provides building blocks for interactive terminal prompts:
// text input, masked input, numeric input, single select, and multi select,
// rendered through pluggable themes.
//
// The library draws one prompt at a time as a block of lines anchored at the
// current cursor position. Each key press runs through a small state machine
// (Active, Submit, Cancel), the prompt projects its state into a
// RenderPayload, the active Theme turns the payload into a Frame, and a frame
// diff engine rewrites only what changed on screen.
//
// Quick Start:
//
//	package main
//
//	import (
//		"errors"
//		"fmt"
//		"log"
//
//		"github.com/nanairo/prompt"
//	)
//
//	func main() {
//		drv, err := prompt.NewTerminal()
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer drv.Close()
//
//		s := prompt.NewSession(drv, prompt.NewMinimalTheme())
//		if err := s.Begin("Survey"); err != nil {
//			log.Fatal(err)
//		}
//		defer s.Finish("Bye!")
//
//		name, err := prompt.Run(s, prompt.NewInput("What is your name?"))
//		if errors.Is(err, prompt.ErrCancel) {
//			return
//		}
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(name)
//	}
//
// Extending:
//
// Built-in prompts implement the Prompt interface (Handle, Render, Submit).
// Custom prompt kinds implement the same interface and run through the same
// Session and diff engine without any changes to either. Prompts that need
// configuration checks before the first render additionally implement
// Setup() error.
//
// Error Handling:
//
// A prompt interrupted with Esc or Ctrl+C makes Run return ErrCancel. Driver
// failures surface as wrapped I/O errors after the terminal mode has been
// restored. Invalid prompt configuration (an empty option list, min > max) is
// reported as a *ConfigError before anything is drawn. Validation failures
// during input are not errors: they are shown inline and the prompt stays
// active.
package prompt
