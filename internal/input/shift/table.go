// Package shift holds the static table that maps an unshifted character
// to the character produced with Shift held, for a US keyboard layout.
package shift

import (
	"errors"
	"fmt"
	"maps"
	"unicode/utf8"
)

// ErrInvalidEntry indicates an override that is not a single character
// on each side.
var ErrInvalidEntry = errors.New("invalid shift table entry")

// defaults is the US layout for digits and punctuation. Letters are not
// listed; Apply upper-cases them.
var defaults = map[rune]rune{
	'`':  '~',
	'1':  '!',
	'2':  '@',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	'[':  '{',
	']':  '}',
	'\\': '|',
	';':  ':',
	'\'': '"',
	',':  '<',
	'.':  '>',
	'/':  '?',
}

// Table maps unshifted characters to their shifted form.
// A Table is immutable and safe for concurrent use.
type Table struct {
	shifted map[rune]rune
	values  map[rune]struct{}
}

// Default returns the built-in US layout table.
func Default() *Table {
	return New(defaults)
}

// New creates a table from the given pairs.
func New(pairs map[rune]rune) *Table {
	t := &Table{
		shifted: maps.Clone(pairs),
		values:  make(map[rune]struct{}, len(pairs)),
	}
	if t.shifted == nil {
		t.shifted = make(map[rune]rune)
	}
	for _, v := range t.shifted {
		t.values[v] = struct{}{}
	}
	return t
}

// WithOverrides returns a copy of t with the given entries added or
// replaced. Keys and values must each be exactly one character.
func (t *Table) WithOverrides(overrides map[string]string) (*Table, error) {
	pairs := maps.Clone(t.shifted)
	for from, to := range overrides {
		f, err := single(from)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %w", ErrInvalidEntry, from, err)
		}
		v, err := single(to)
		if err != nil {
			return nil, fmt.Errorf("%w: value %q for %q: %w", ErrInvalidEntry, to, from, err)
		}
		pairs[f] = v
	}
	return New(pairs), nil
}

// Lookup returns the table entry for r.
func (t *Table) Lookup(r rune) (rune, bool) {
	v, ok := t.shifted[r]
	return v, ok
}

// Apply returns the character typed when r is pressed with Shift.
// Lower-case letters are upper-cased and table entries are mapped.
// Characters that already are a shifted form (upper-case letters or a
// table value) are returned as is, since many frontends deliver the
// shifted character together with the Shift modifier. Anything else has
// no shifted form and ok is false.
func (t *Table) Apply(r rune) (rune, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	case r >= 'A' && r <= 'Z':
		return r, true
	}
	if v, ok := t.shifted[r]; ok {
		return v, true
	}
	if _, ok := t.values[r]; ok {
		return r, true
	}
	return 0, false
}

// Len returns the number of table entries.
func (t *Table) Len() int {
	return len(t.shifted)
}

func single(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New("must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
