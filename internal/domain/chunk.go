package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// DefaultMessageLimit is the platform's per-message length limit.
const DefaultMessageLimit = 2000

// Unit is how segment length is measured.
type Unit string

const (
	// UnitRunes counts Unicode code points.
	UnitRunes Unit = "runes"

	// UnitBytes counts UTF-8 encoded bytes.
	UnitBytes Unit = "bytes"

	// UnitUTF16 counts UTF-16 code units.
	UnitUTF16 Unit = "utf16"

	// UnitGraphemes counts user-perceived characters (extended grapheme clusters).
	UnitGraphemes Unit = "graphemes"
)

// ParseUnit converts a configuration value into a Unit. Empty means UnitRunes.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(strings.ToLower(strings.TrimSpace(s))); u {
	case "":
		return UnitRunes, nil
	case UnitRunes, UnitBytes, UnitUTF16, UnitGraphemes:
		return u, nil
	default:
		return "", fmt.Errorf("unknown chunk unit %q", s)
	}
}

// minLimit is the smallest limit that still fits one indivisible atom of the unit.
func (u Unit) minLimit() int {
	switch u {
	case UnitBytes:
		return utf8.UTFMax
	case UnitUTF16:
		return 2 // surrogate pair
	default:
		return 1
	}
}

// Chunker splits completion text into segments that fit one platform message.
type Chunker struct {
	limit int
	unit  Unit
}

// NewChunker creates a chunker, validating limit against the unit.
func NewChunker(limit int, unit Unit) (*Chunker, error) {
	unit, err := ParseUnit(string(unit))
	if err != nil {
		return nil, err
	}

	if limit < unit.minLimit() {
		return nil, fmt.Errorf("%w: %d %s (minimum %d)", ErrInvalidLimit, limit, unit, unit.minLimit())
	}

	return &Chunker{
		limit: limit,
		unit:  unit,
	}, nil
}

// Limit returns the maximum segment length.
func (c *Chunker) Limit() int {
	return c.limit
}

// Unit returns the measurement unit.
func (c *Chunker) Unit() Unit {
	return c.unit
}

// Split splits text with the chunker's limit and unit.
func (c *Chunker) Split(text string) []string {
	return split(text, c.limit, c.unit)
}

// Split splits text into consecutive segments of at most limit units each.
//
// Concatenating the result reproduces text exactly. Segments never divide a code point,
// and in grapheme mode never divide a cluster. Text that fits returns a single segment
// unchanged; empty text returns one empty segment.
func Split(text string, limit int, unit Unit) ([]string, error) {
	c, err := NewChunker(limit, unit)
	if err != nil {
		return nil, err
	}
	return c.Split(text), nil
}

// Length measures text in the given unit.
func Length(text string, unit Unit) int {
	switch unit {
	case UnitBytes:
		return len(text)
	case UnitUTF16:
		n := 0
		for _, r := range text {
			n += utf16Width(r)
		}
		return n
	case UnitGraphemes:
		return uniseg.GraphemeClusterCount(text)
	default:
		return utf8.RuneCountInString(text)
	}
}

func split(text string, limit int, unit Unit) []string {
	if Length(text, unit) <= limit {
		return []string{text}
	}

	segments := make([]string, 0, Length(text, unit)/limit+1)
	start, size := 0, 0

	// Greedy cut: extend the current segment atom by atom and close it right
	// before the atom that would overflow the limit.
	forEachAtom(text, unit, func(offset, width int) {
		if size+width > limit {
			segments = append(segments, text[start:offset])
			start, size = offset, 0
		}
		size += width
	})

	return append(segments, text[start:])
}

// forEachAtom calls fn with the byte offset and unit width of every indivisible atom.
func forEachAtom(text string, unit Unit, fn func(offset, width int)) {
	if unit == UnitGraphemes {
		offset := 0
		g := uniseg.NewGraphemes(text)
		for g.Next() {
			fn(offset, 1)
			offset += len(g.Str())
		}
		return
	}

	for offset, r := range text {
		switch unit {
		case UnitBytes:
			fn(offset, runeByteLen(text[offset:], r))
		case UnitUTF16:
			fn(offset, utf16Width(r))
		default:
			fn(offset, 1)
		}
	}
}

// runeByteLen reports the encoded length of the rune at the start of s.
// Invalid bytes decode as RuneError but occupy a single byte.
func runeByteLen(s string, r rune) int {
	if r == utf8.RuneError {
		_, n := utf8.DecodeRuneInString(s)
		return n
	}
	return utf8.RuneLen(r)
}

func utf16Width(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}
