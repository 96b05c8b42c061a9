// Basic shows the smallest useful session: one text prompt and a
// confirmation, with cancel handling.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nanairo/prompt"
)

func main() {
	term, err := prompt.NewTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer term.Close()

	s := prompt.NewSession(term, prompt.NewMinimalTheme())

	name, err := prompt.Run(s, prompt.NewInput("What is your name?").
		WithPlaceholder("Jane Doe").
		Required())
	if err != nil {
		exit(err)
	}

	ok, err := prompt.Run(s, prompt.NewConfirm(fmt.Sprintf("Greet %s?", name)).
		WithDefault(true))
	if err != nil {
		exit(err)
	}

	if err := s.Finish("Bye"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if ok {
		fmt.Printf("Hello, %s!\n", name)
	}
}

func exit(err error) {
	if errors.Is(err, prompt.ErrCancel) {
		os.Exit(130)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
