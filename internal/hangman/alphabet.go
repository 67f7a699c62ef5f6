package hangman

import (
	"fmt"
	"strings"
	"unicode"
)

// Alphabet is the set of letters a keystroke may carry.
type Alphabet struct {
	name  string
	first rune
	last  rune
	extra []rune
}

var (
	// Latin covers the unmodified a-z keycode range.
	Latin = Alphabet{name: "latin", first: 'a', last: 'z'}
	// Cyrillic covers а-я plus ё, which sits outside the contiguous block.
	Cyrillic = Alphabet{name: "cyrillic", first: 'а', last: 'я', extra: []rune{'ё'}}
)

// AlphabetByName resolves a configured alphabet name.
func AlphabetByName(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Latin.name:
		return Latin, nil
	case Cyrillic.name:
		return Cyrillic, nil
	}
	return Alphabet{}, fmt.Errorf("hangman: unknown alphabet %q", name)
}

// Name returns the configuration name of the alphabet.
func (a Alphabet) Name() string {
	if a.name == "" {
		return Latin.name
	}
	return a.name
}

// Contains reports whether r is a lowercase letter of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	a = a.orDefault()
	if r >= a.first && r <= a.last {
		return true
	}
	for _, x := range a.extra {
		if r == x {
			return true
		}
	}
	return false
}

// Playable reports whether word is non-empty and made only of alphabet letters.
func (a Alphabet) Playable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

// normalize lowercases a single-character input.
func (a Alphabet) normalize(input string) (rune, bool) {
	runes := []rune(strings.TrimSpace(input))
	if len(runes) != 1 {
		return 0, false
	}
	r := unicode.ToLower(runes[0])
	return r, a.Contains(r)
}

func (a Alphabet) orDefault() Alphabet {
	if a.name == "" {
		return Latin
	}
	return a
}
