// Survey walks through every built-in prompt kind inside a FancyTheme
// session bracket, with session messages between steps.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nanairo/prompt"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, prompt.ErrCancel) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	term, err := prompt.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	s := prompt.NewSession(term, prompt.NewFancyTheme())
	if err := s.Begin("Project Setup"); err != nil {
		return err
	}

	name, err := prompt.Run(s, prompt.NewInput("Project name").
		WithValidator(prompt.All(
			prompt.MinLength(1),
			prompt.Matches(`^[a-z][a-z0-9-]*$`, "lowercase letters, digits, and dashes"),
		)))
	if err != nil {
		return err
	}

	if _, err := prompt.Run(s, prompt.NewPassword("Registry token").
		WithHint("stored in your keychain").
		Required()); err != nil {
		return err
	}

	port, err := prompt.Run(s, prompt.NewNumber("HTTP port").
		WithMin(1).
		WithMax(65535).
		WithDefault(8080))
	if err != nil {
		return err
	}

	license, err := prompt.Run(s, prompt.NewSelect("License", []prompt.SelectOption[string]{
		{Label: "MIT", Value: "mit"},
		{Label: "Apache 2.0", Value: "apache-2.0"},
		{Label: "BSD 3-Clause", Value: "bsd-3-clause"},
		{Label: "Proprietary", Value: "none", Hint: "talk to legal first", Disabled: true},
	}))
	if err != nil {
		return err
	}

	features, err := prompt.Run(s, prompt.NewMultiSelect("Features", []prompt.SelectOption[string]{
		{Label: "HTTP server", Value: "http"},
		{Label: "Metrics endpoint", Value: "metrics"},
		{Label: "Dockerfile", Value: "docker"},
		{Label: "CI workflow", Value: "ci"},
	}).WithPreselected(0).WithHint("space toggles, a selects all"))
	if err != nil {
		return err
	}

	s.Info(fmt.Sprintf("scaffolding %s (:%d, %s)", name, int(port), license))
	for _, f := range features {
		s.Success("enabled " + f)
	}

	return s.Finish("Project created")
}
