package config

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Charset turns a configured glyph string into the rune set cells draw from
// Input is NFC-normalized and stripped of control and space runes; for
// terminal output only runes occupying exactly one column are kept
func Charset(s string, terminal bool) []rune {
	s = norm.NFC.String(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r == unicode.ReplacementChar {
			continue
		}
		if terminal && runewidth.RuneWidth(r) != 1 {
			continue
		}
		out = append(out, r)
	}
	return out
}
