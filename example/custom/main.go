// Custom shows how to build a prompt kind of your own: a star rating driven
// by the arrow keys. Implementing Handle, Render, and Submit is all a type
// needs to run on a Session.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nanairo/prompt"
)

// rating is a 1..5 star picker.
type rating struct {
	message string
	stars   int
}

func newRating(message string) *rating {
	return &rating{message: message, stars: 3}
}

func (r *rating) Handle(key prompt.Key) prompt.State {
	switch key.Code {
	case prompt.KeyLeft, prompt.KeyDown:
		if r.stars > 1 {
			r.stars--
		}
	case prompt.KeyRight, prompt.KeyUp:
		if r.stars < 5 {
			r.stars++
		}
	case prompt.KeyChar:
		if key.Rune >= '1' && key.Rune <= '5' {
			r.stars = int(key.Rune - '0')
		}
	case prompt.KeyEnter:
		return prompt.StateSubmit
	}
	return prompt.StateActive
}

func (r *rating) Render(state prompt.State) prompt.RenderPayload {
	bar := strings.Repeat("★", r.stars) + strings.Repeat("☆", 5-r.stars)
	return prompt.RenderPayload{
		Message: r.message,
		Hint:    "arrows adjust, 1-5 jump",
		Input:   prompt.InputRaw(bar),
	}
}

func (r *rating) Submit() int {
	return r.stars
}

func main() {
	term, err := prompt.NewTerminal()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer term.Close()

	s := prompt.NewSession(term, prompt.NewMinimalTheme())
	stars, err := prompt.Run(s, newRating("How did we do?"))
	if err != nil {
		if errors.Is(err, prompt.ErrCancel) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := s.Finish("Thanks!"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("rated %d/5\n", stars)
}
