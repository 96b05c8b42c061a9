package prompt

import (
	"fmt"
	"strings"
)

// Color is a 24-bit terminal foreground color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Colors used by the built-in themes.
var (
	ColorCyan   = Color{R: 0, G: 205, B: 205}
	ColorGreen  = Color{R: 80, G: 200, B: 120}
	ColorYellow = Color{R: 230, G: 190, B: 80}
	ColorRed    = Color{R: 220, G: 80, B: 80}
	ColorGrey   = Color{R: 128, G: 128, B: 128}
)

// Styled accumulates SGR attributes around a piece of text. The zero value
// renders the text unchanged.
type Styled struct {
	content string
	codes   []string
}

// Style starts a styling chain for content.
func Style(content string) *Styled {
	return &Styled{content: content}
}

// Fg sets the foreground color.
func (s *Styled) Fg(c Color) *Styled {
	s.codes = append(s.codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return s
}

// Bold applies the bold attribute.
func (s *Styled) Bold() *Styled {
	s.codes = append(s.codes, "1")
	return s
}

// Dim applies the faint attribute.
func (s *Styled) Dim() *Styled {
	s.codes = append(s.codes, "2")
	return s
}

// Reverse swaps foreground and background; themes use it to paint the
// input cursor cell.
func (s *Styled) Reverse() *Styled {
	s.codes = append(s.codes, "7")
	return s
}

func (s *Styled) String() string {
	if len(s.codes) == 0 {
		return s.content
	}
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", strings.Join(s.codes, ";"), s.content)
}
