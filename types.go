package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"viselica/internal/hangman"
)

// App holds everything the handlers share. One App per process.
type App struct {
	Config

	Catalog  []hangman.WordEntry
	WordSet  map[string]struct{}
	Alphabet hangman.Alphabet

	GameSessions map[string]*GameState
	SessionMutex sync.RWMutex

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex

	StartTime time.Time

	// pick overrides random word selection in tests
	pick func(n int) int
}

// GameState is a browser session's current round.
type GameState struct {
	Session        *hangman.Session
	LastAccessTime time.Time

	// mu serialises keystrokes for one browser session across HTTP and WebSocket.
	mu sync.Mutex
}

// persistedGame is the on-disk form of a GameState. Its age is the file's
// modification time.
type persistedGame struct {
	State hangman.State `json:"state"`
}

// sessionConfig is the hangman configuration every round of this App uses.
func (app *App) sessionConfig() hangman.Config {
	return hangman.Config{
		MaxWrongGuesses: MaxWrongGuesses,
		Alphabet:        app.Alphabet,
		Pick:            app.pick,
	}
}
