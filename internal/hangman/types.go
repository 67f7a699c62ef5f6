// Package hangman holds the rules of a single Hangman round.
//
// A Session owns the target word, the correct and wrong letters guessed so far and
// decides each keystroke. It never renders anything: callers read its queries and
// react to the GuessResult returned by SubmitLetter.
package hangman

import "errors"

// DefaultMaxWrongGuesses matches the six parts of the stick figure.
const DefaultMaxWrongGuesses = 6

var (
	// ErrEmptyCatalog means there is no entry to start a round with.
	ErrEmptyCatalog = errors.New("hangman: catalog has no entries")
	// ErrInvalidEntry means a catalog word cannot be typed in the alphabet.
	ErrInvalidEntry = errors.New("hangman: catalog entry is not playable")

	ErrInvalidInput    = errors.New("hangman: input is not a letter of the alphabet")
	ErrDuplicateGuess  = errors.New("hangman: letter already guessed")
	ErrSessionTerminal = errors.New("hangman: round is over")

	// ErrCorruptState is returned by Restore when a snapshot breaks an invariant.
	ErrCorruptState = errors.New("hangman: snapshot violates session invariants")
)

// WordEntry is one catalog item.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint"`
}

// Outcome classifies a round.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in_progress"
	}
}

// Verdict tells whether an accepted letter is in the target word.
type Verdict int

const (
	Correct Verdict = iota + 1
	Wrong
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "none"
	}
}

// GuessResult describes an accepted letter.
type GuessResult struct {
	Letter           rune
	Verdict          Verdict
	Won              bool
	Lost             bool
	RemainingGuesses int
}

// Slot is one position of the masked target word. Letter is zero while the
// slot is hidden.
type Slot struct {
	Letter   rune
	Revealed bool
}

// BlankMarker is what an unrevealed slot prints as.
const BlankMarker = "_"

func (s Slot) String() string {
	if !s.Revealed {
		return BlankMarker
	}
	return string(s.Letter)
}

// Config tunes a session. The zero value plays six wrong guesses in the Latin
// alphabet with a crypto/rand picker.
type Config struct {
	MaxWrongGuesses int
	Alphabet        Alphabet
	// Pick returns an index in [0, n). Nil uses crypto/rand.
	Pick func(n int) int
}

func (c Config) withDefaults() Config {
	if c.MaxWrongGuesses <= 0 {
		c.MaxWrongGuesses = DefaultMaxWrongGuesses
	}
	c.Alphabet = c.Alphabet.orDefault()
	if c.Pick == nil {
		c.Pick = cryptoIndex
	}
	return c
}
