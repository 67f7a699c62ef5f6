package hangman

import (
	"fmt"
	"slices"
	"strings"
)

// State is the serialisable form of a Session.
type State struct {
	Word            string   `json:"word"`
	Hint            string   `json:"hint"`
	Correct         []string `json:"correct"`
	Wrong           []string `json:"wrong"`
	MaxWrongGuesses int      `json:"maxWrongGuesses"`
	Alphabet        string   `json:"alphabet"`
}

// Snapshot captures the session. Correct letters are sorted, wrong letters keep
// their guess order.
func (s *Session) Snapshot() State {
	st := State{
		Word:            s.target.Word,
		Hint:            s.target.Hint,
		Correct:         make([]string, 0, len(s.correct)),
		Wrong:           make([]string, 0, len(s.wrong)),
		MaxWrongGuesses: s.cfg.MaxWrongGuesses,
		Alphabet:        s.cfg.Alphabet.Name(),
	}
	for _, r := range s.CorrectLetters() {
		st.Correct = append(st.Correct, string(r))
	}
	for _, r := range s.wrong {
		st.Wrong = append(st.Wrong, string(r))
	}
	return st
}

// Restore rebuilds a session from a snapshot. pick is kept for later Resets and
// may be nil.
func Restore(st State, pick func(n int) int) (*Session, error) {
	alphabet, err := AlphabetByName(st.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if st.MaxWrongGuesses <= 0 {
		return nil, fmt.Errorf("%w: max wrong guesses %d", ErrCorruptState, st.MaxWrongGuesses)
	}
	word := strings.ToLower(st.Word)
	if !alphabet.Playable(word) {
		return nil, fmt.Errorf("%w: word %q", ErrCorruptState, st.Word)
	}

	s := &Session{
		cfg:     Config{MaxWrongGuesses: st.MaxWrongGuesses, Alphabet: alphabet, Pick: pick}.withDefaults(),
		target:  WordEntry{Word: word, Hint: st.Hint},
		correct: make(map[rune]struct{}, len(st.Correct)),
		wrong:   make([]rune, 0, len(st.Wrong)),
	}

	for _, l := range st.Correct {
		r, ok := alphabet.normalize(l)
		if !ok || !strings.ContainsRune(word, r) {
			return nil, fmt.Errorf("%w: correct letter %q", ErrCorruptState, l)
		}
		if _, dup := s.correct[r]; dup {
			return nil, fmt.Errorf("%w: duplicate correct letter %q", ErrCorruptState, l)
		}
		s.correct[r] = struct{}{}
	}
	for _, l := range st.Wrong {
		r, ok := alphabet.normalize(l)
		if !ok || strings.ContainsRune(word, r) {
			return nil, fmt.Errorf("%w: wrong letter %q", ErrCorruptState, l)
		}
		if slices.Contains(s.wrong, r) {
			return nil, fmt.Errorf("%w: duplicate wrong letter %q", ErrCorruptState, l)
		}
		s.wrong = append(s.wrong, r)
	}
	if len(s.wrong) > s.cfg.MaxWrongGuesses {
		return nil, fmt.Errorf("%w: %d wrong letters exceed %d", ErrCorruptState, len(s.wrong), s.cfg.MaxWrongGuesses)
	}
	// a round stops at whichever end it reaches first, so it cannot reach both
	if s.covered() && len(s.wrong) == s.cfg.MaxWrongGuesses {
		return nil, fmt.Errorf("%w: word fully guessed after the wrong-guess budget ran out", ErrCorruptState)
	}
	return s, nil
}
