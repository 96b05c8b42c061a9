package prompt

import (
	"strconv"
	"strings"
)

// KeyCode identifies a logical key. Printable characters are reported as
// KeyChar with the scalar value in Key.Rune.
type KeyCode int

// Key codes recognized by the event model.
const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeyPageUp
	KeyPageDown
)

// Modifiers is a bit set of modifier keys held during a key press.
type Modifiers uint8

// Modifier flags. Combine with bitwise OR.
const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all modifiers in m are present.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

// Key is one normalized key event: a logical code, the character for KeyChar
// events, and the modifier set.
type Key struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// Char builds a plain character key event.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// Ctrl builds a Ctrl+letter key event.
func Ctrl(r rune) Key {
	return Key{Code: KeyChar, Rune: r, Mods: ModCtrl}
}

// keyDecoder turns a raw rune stream from the terminal into Key events.
// It owns all platform normalization: escape-sequence parsing, control-byte
// mapping, and collapsing the CR+LF pair some consoles deliver for a single
// Enter press into one event. Prompts never see the raw artifacts.
type keyDecoder struct {
	read     func() (rune, error)
	buffered func() bool
	lastCR   bool
}

func newKeyDecoder(read func() (rune, error), buffered func() bool) *keyDecoder {
	return &keyDecoder{read: read, buffered: buffered}
}

// Next blocks until one logical key event is available.
func (d *keyDecoder) Next() (Key, error) {
	for {
		r, err := d.read()
		if err != nil {
			return Key{}, err
		}

		// Windows consoles report Enter as CR followed by LF. The pair is
		// one physical key press, so the trailing LF is swallowed.
		if r == '\n' && d.lastCR {
			d.lastCR = false
			continue
		}
		d.lastCR = r == '\r'

		switch {
		case r == '\r' || r == '\n':
			return Key{Code: KeyEnter}, nil
		case r == '\t':
			return Key{Code: KeyTab}, nil
		case r == 0x7f || r == '\b':
			return Key{Code: KeyBackspace}, nil
		case r == 0x1b:
			if d.buffered != nil && !d.buffered() {
				return Key{Code: KeyEsc}, nil
			}
			key, ok, err := d.readEscape()
			if err != nil {
				return Key{}, err
			}
			if ok {
				return key, nil
			}
			// Unknown sequence: drop it and wait for the next key.
		case r < 0x20:
			return Key{Code: KeyChar, Rune: 'a' + r - 1, Mods: ModCtrl}, nil
		default:
			return Key{Code: KeyChar, Rune: r}, nil
		}
	}
}

func (d *keyDecoder) readEscape() (Key, bool, error) {
	r, err := d.read()
	if err != nil {
		return Key{}, false, err
	}

	switch r {
	case '[':
		return d.readCSI()
	case 'O':
		final, err := d.read()
		if err != nil {
			return Key{}, false, err
		}
		switch final {
		case 'H':
			return Key{Code: KeyHome}, true, nil
		case 'F':
			return Key{Code: KeyEnd}, true, nil
		}
		return Key{}, false, nil
	case 0x1b:
		return Key{Code: KeyEsc}, true, nil
	default:
		// ESC prefix on a plain character is the Alt modifier.
		return Key{Code: KeyChar, Rune: r, Mods: ModAlt}, true, nil
	}
}

// readCSI parses a CSI sequence after "ESC [": optional numeric parameters
// separated by ';' and a final byte. Modifiers follow the xterm encoding in
// the second parameter (value-1 is a bit set of shift=1, alt=2, ctrl=4).
func (d *keyDecoder) readCSI() (Key, bool, error) {
	var params strings.Builder
	var final rune
	for i := 0; i < 16; i++ {
		r, err := d.read()
		if err != nil {
			return Key{}, false, err
		}
		if r >= '0' && r <= '9' || r == ';' {
			params.WriteRune(r)
			continue
		}
		final = r
		break
	}
	if final == 0 {
		return Key{}, false, nil
	}

	first, mods := splitCSIParams(params.String())

	switch final {
	case 'A':
		return Key{Code: KeyUp, Mods: mods}, true, nil
	case 'B':
		return Key{Code: KeyDown, Mods: mods}, true, nil
	case 'C':
		return Key{Code: KeyRight, Mods: mods}, true, nil
	case 'D':
		return Key{Code: KeyLeft, Mods: mods}, true, nil
	case 'H':
		return Key{Code: KeyHome, Mods: mods}, true, nil
	case 'F':
		return Key{Code: KeyEnd, Mods: mods}, true, nil
	case 'Z':
		return Key{Code: KeyTab, Mods: ModShift}, true, nil
	case '~':
		switch first {
		case 1, 7:
			return Key{Code: KeyHome, Mods: mods}, true, nil
		case 3:
			return Key{Code: KeyDelete, Mods: mods}, true, nil
		case 4, 8:
			return Key{Code: KeyEnd, Mods: mods}, true, nil
		case 5:
			return Key{Code: KeyPageUp, Mods: mods}, true, nil
		case 6:
			return Key{Code: KeyPageDown, Mods: mods}, true, nil
		}
	}
	return Key{}, false, nil
}

func splitCSIParams(raw string) (first int, mods Modifiers) {
	if raw == "" {
		return 0, ModNone
	}
	parts := strings.Split(raw, ";")
	first, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m > 0 {
			bits := m - 1
			if bits&1 != 0 {
				mods |= ModShift
			}
			if bits&2 != 0 {
				mods |= ModAlt
			}
			if bits&4 != 0 {
				mods |= ModCtrl
			}
		}
	}
	return first, mods
}
