package hangman

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// Session is the mutable state of one round.
type Session struct {
	cfg     Config
	target  WordEntry
	correct map[rune]struct{}
	wrong   []rune
}

// New selects a target uniformly at random from catalog and starts a round.
func New(catalog []WordEntry, cfg Config) (*Session, error) {
	cfg = cfg.withDefaults()
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, entry := range catalog {
		if !cfg.Alphabet.Playable(strings.ToLower(entry.Word)) {
			return nil, fmt.Errorf("%w: entry %d %q in alphabet %s", ErrInvalidEntry, i, entry.Word, cfg.Alphabet.Name())
		}
	}

	idx := cfg.Pick(len(catalog))
	if idx < 0 || idx >= len(catalog) {
		idx = 0
	}
	target := catalog[idx]
	target.Word = strings.ToLower(target.Word)

	return &Session{
		cfg:     cfg,
		target:  target,
		correct: make(map[rune]struct{}),
		wrong:   []rune{},
	}, nil
}

// Reset starts a fresh round with the same configuration. The receiver is left
// untouched and should be dropped by the caller.
func (s *Session) Reset(catalog []WordEntry) (*Session, error) {
	return New(catalog, s.cfg)
}

// SubmitLetter decides a single keystroke.
//
// Checks run in order: alphabet, terminal round, duplicate. Only a letter passing all
// three mutates the session.
func (s *Session) SubmitLetter(input string) (GuessResult, error) {
	letter, ok := s.cfg.Alphabet.normalize(input)
	if !ok {
		return GuessResult{}, fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}
	if s.Terminal() {
		return GuessResult{Letter: letter}, ErrSessionTerminal
	}
	if s.guessed(letter) {
		return GuessResult{Letter: letter}, fmt.Errorf("%w: %c", ErrDuplicateGuess, letter)
	}

	if strings.ContainsRune(s.target.Word, letter) {
		s.correct[letter] = struct{}{}
		return GuessResult{
			Letter:           letter,
			Verdict:          Correct,
			Won:              s.Outcome() == Won,
			RemainingGuesses: s.RemainingGuesses(),
		}, nil
	}

	s.wrong = append(s.wrong, letter)
	return GuessResult{
		Letter:           letter,
		Verdict:          Wrong,
		Lost:             s.Outcome() == Lost,
		RemainingGuesses: s.RemainingGuesses(),
	}, nil
}

// Mask returns one slot per character of the target word. Hidden slots carry no
// letter.
func (s *Session) Mask() []Slot {
	word := []rune(s.target.Word)
	slots := make([]Slot, len(word))
	for i, r := range word {
		if _, revealed := s.correct[r]; revealed {
			slots[i] = Slot{Letter: r, Revealed: true}
		}
	}
	return slots
}

// covered reports whether every letter of the target is among the correct letters.
func (s *Session) covered() bool {
	for _, r := range s.target.Word {
		if _, ok := s.correct[r]; !ok {
			return false
		}
	}
	return true
}

// Outcome is derived from the letters guessed so far.
func (s *Session) Outcome() Outcome {
	switch {
	case len(s.wrong) >= s.cfg.MaxWrongGuesses:
		return Lost
	case s.covered():
		return Won
	default:
		return InProgress
	}
}

// Terminal reports whether the round no longer accepts letters.
func (s *Session) Terminal() bool {
	return s.Outcome() != InProgress
}

func (s *Session) Target() WordEntry { return s.target }

func (s *Session) Hint() string { return s.target.Hint }

func (s *Session) Alphabet() Alphabet { return s.cfg.Alphabet }

func (s *Session) MaxWrongGuesses() int { return s.cfg.MaxWrongGuesses }

// RemainingGuesses is how many more wrong letters the round tolerates.
func (s *Session) RemainingGuesses() int {
	return max(s.cfg.MaxWrongGuesses-len(s.wrong), 0)
}

// CorrectLetters returns the correct letters in sorted order.
func (s *Session) CorrectLetters() []rune {
	out := make([]rune, 0, len(s.correct))
	for r := range s.correct {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// WrongLetters returns the wrong letters in the order they were guessed.
func (s *Session) WrongLetters() []rune {
	return slices.Clone(s.wrong)
}

func (s *Session) guessed(r rune) bool {
	if _, ok := s.correct[r]; ok {
		return true
	}
	return slices.Contains(s.wrong, r)
}

// cryptoIndex draws from crypto/rand and falls back to the first entry.
func cryptoIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
