package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"viselica/internal/hangman"
	"viselica/internal/types"
)

// Test constants
const (
	TestWordCat   = "кот"
	TestWordHouse = "дом"
	TestHintCat   = "Домашнее животное"
	TestHintHouse = "Здесь живут"
)

func testWords() []hangman.WordEntry {
	return []hangman.WordEntry{
		{Word: TestWordCat, Hint: TestHintCat},
		{Word: TestWordHouse, Hint: TestHintHouse},
	}
}

// testAppWithWords builds an App that keeps sessions in memory and always picks
// the first available word.
func testAppWithWords(words []hangman.WordEntry) *App {
	return &App{
		Config: Config{
			Port:            "0",
			AlphabetName:    "cyrillic",
			SessionsDir:     "none",
			SessionTimeout:  time.Hour,
			CookieMaxAge:    time.Hour,
			StaticCacheAge:  time.Minute,
			CleanupInterval: time.Minute,
			RateLimitRPS:    10,
			RateLimitBurst:  10,
		},
		Catalog:      words,
		WordSet:      buildWordSet(words),
		Alphabet:     hangman.Cyrillic,
		GameSessions: make(map[string]*GameState),
		LimiterMap:   make(map[string]*rate.Limiter),
		StartTime:    time.Now(),
		pick:         func(int) int { return 0 },
	}
}

func dummyContext() context.Context {
	return context.WithValue(context.Background(), requestIDKey, "test-request")
}

func TestCreateNewGame(t *testing.T) {
	app := testAppWithWords(testWords())
	sessionID := uuid.NewString()

	before := time.Now()
	game, err := app.createNewGame(dummyContext(), sessionID)
	if err != nil {
		t.Fatalf("createNewGame: %v", err)
	}
	if game.Session.Target().Word != TestWordCat {
		t.Errorf("target = %q, want %q", game.Session.Target().Word, TestWordCat)
	}
	if game.LastAccessTime.Before(before) {
		t.Errorf("LastAccessTime %v not set at creation", game.LastAccessTime)
	}
	if app.GameSessions[sessionID] != game {
		t.Error("createNewGame did not store the game")
	}
}

func TestCreateNewGameWithCompletedWords(t *testing.T) {
	app := testAppWithWords(testWords())
	ctx := dummyContext()
	sessionID := uuid.NewString()

	game, reset, err := app.createNewGameWithCompletedWords(ctx, sessionID, []string{TestWordCat})
	if err != nil {
		t.Fatalf("createNewGameWithCompletedWords: %v", err)
	}
	if reset {
		t.Error("reset should be false while words remain")
	}
	if game.Session.Target().Word != TestWordHouse {
		t.Errorf("target = %q, want %q", game.Session.Target().Word, TestWordHouse)
	}

	game, reset, err = app.createNewGameWithCompletedWords(ctx, sessionID, []string{TestWordCat, TestWordHouse})
	if err != nil {
		t.Fatalf("createNewGameWithCompletedWords: %v", err)
	}
	if !reset {
		t.Error("reset should be true once every word is completed")
	}
	if game.Session.Target().Word != TestWordCat {
		t.Errorf("after reset target = %q, want full catalog pick %q", game.Session.Target().Word, TestWordCat)
	}
}

func TestCreateNewGame_EmptyCatalog(t *testing.T) {
	app := testAppWithWords(nil)
	_, err := app.createNewGame(dummyContext(), uuid.NewString())
	if !errors.Is(err, hangman.ErrEmptyCatalog) {
		t.Errorf("err = %v, want ErrEmptyCatalog", err)
	}
}

type recordingNotifier struct {
	toasts []types.Toast
}

func (r *recordingNotifier) Notify(message string, severity types.Severity) {
	r.toasts = append(r.toasts, types.Toast{Message: message, Level: severity})
}

func TestApplyLetter_WinLose(t *testing.T) {
	app := testAppWithWords(testWords())
	ctx := dummyContext()

	t.Run("win", func(t *testing.T) {
		sessionID := uuid.NewString()
		game, err := app.createNewGame(ctx, sessionID)
		if err != nil {
			t.Fatal(err)
		}
		n := &recordingNotifier{}
		for _, letter := range []string{"к", "О", "т"} {
			if _, err := app.applyLetter(ctx, sessionID, game, letter, n); err != nil {
				t.Fatalf("applyLetter(%q): %v", letter, err)
			}
		}
		if game.Session.Outcome() != hangman.Won {
			t.Errorf("outcome = %v, want won", game.Session.Outcome())
		}
		if len(n.toasts) != 1 || n.toasts[0].Message != ToastWon || n.toasts[0].Level != types.SeveritySuccess {
			t.Errorf("toasts = %+v, want one success toast", n.toasts)
		}
	})

	t.Run("lose", func(t *testing.T) {
		sessionID := uuid.NewString()
		game, err := app.createNewGame(ctx, sessionID)
		if err != nil {
			t.Fatal(err)
		}
		n := &recordingNotifier{}
		var res hangman.GuessResult
		for _, letter := range []string{"а", "б", "в", "г", "д", "е"} {
			res, err = app.applyLetter(ctx, sessionID, game, letter, n)
			if err != nil {
				t.Fatalf("applyLetter(%q): %v", letter, err)
			}
		}
		if !res.Lost || res.RemainingGuesses != 0 {
			t.Errorf("last result = %+v, want lost with 0 remaining", res)
		}
		if len(n.toasts) != 1 || n.toasts[0].Message != ToastLost {
			t.Errorf("toasts = %+v, want one loss toast", n.toasts)
		}

		_, err = app.applyLetter(ctx, sessionID, game, "к", n)
		if !errors.Is(err, hangman.ErrSessionTerminal) {
			t.Errorf("guess after loss err = %v, want ErrSessionTerminal", err)
		}
		if len(n.toasts) != 1 {
			t.Errorf("guess after loss should stay silent, toasts = %+v", n.toasts)
		}
	})
}

func TestApplyLetter_DuplicateAndInvalid(t *testing.T) {
	app := testAppWithWords(testWords())
	ctx := dummyContext()
	sessionID := uuid.NewString()
	game, err := app.createNewGame(ctx, sessionID)
	if err != nil {
		t.Fatal(err)
	}
	n := &recordingNotifier{}

	if _, err := app.applyLetter(ctx, sessionID, game, "я", n); err != nil {
		t.Fatalf("first guess: %v", err)
	}
	if _, err := app.applyLetter(ctx, sessionID, game, "я", n); !errors.Is(err, hangman.ErrDuplicateGuess) {
		t.Errorf("duplicate err = %v, want ErrDuplicateGuess", err)
	}
	if len(n.toasts) != 1 || n.toasts[0].Message != ToastDuplicate || n.toasts[0].Level != types.SeverityWarning {
		t.Errorf("toasts = %+v, want one duplicate warning", n.toasts)
	}

	for _, input := range []string{"", "1", "q", "ab", "Enter"} {
		if _, err := app.applyLetter(ctx, sessionID, game, input, n); !errors.Is(err, hangman.ErrInvalidInput) {
			t.Errorf("applyLetter(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
	if len(n.toasts) != 1 {
		t.Errorf("invalid input should stay silent, toasts = %+v", n.toasts)
	}
	if got := len(game.Session.WrongLetters()); got != 1 {
		t.Errorf("wrong letters = %d, want 1", got)
	}
}

func TestBuildBoardView(t *testing.T) {
	app := testAppWithWords(testWords())
	ctx := dummyContext()
	sessionID := uuid.NewString()
	game, err := app.createNewGame(ctx, sessionID)
	if err != nil {
		t.Fatal(err)
	}

	board := game.board()
	if board.Hint != TestHintCat {
		t.Errorf("hint = %q, want %q", board.Hint, TestHintCat)
	}
	if len(board.Mask) != 3 || board.Mask[0].Revealed {
		t.Errorf("mask = %+v, want three hidden slots", board.Mask)
	}
	if board.TargetWord != "" {
		t.Error("target word must stay hidden during play")
	}
	if len(board.Figure) != MaxWrongGuesses {
		t.Errorf("figure has %d parts, want %d", len(board.Figure), MaxWrongGuesses)
	}

	_, _ = app.applyLetter(ctx, sessionID, game, "о", nil)
	_, _ = app.applyLetter(ctx, sessionID, game, "ж", nil)
	board = game.board()
	if !board.Mask[1].Revealed || board.Mask[1].Letter != "о" {
		t.Errorf("mask[1] = %+v, want revealed о", board.Mask[1])
	}
	if !board.Figure[0].Visible || board.Figure[1].Visible {
		t.Errorf("figure = %+v, want only the head visible", board.Figure)
	}
	if board.RemainingGuesses != MaxWrongGuesses-1 {
		t.Errorf("remaining = %d, want %d", board.RemainingGuesses, MaxWrongGuesses-1)
	}

	_, _ = app.applyLetter(ctx, sessionID, game, "к", nil)
	_, _ = app.applyLetter(ctx, sessionID, game, "т", nil)
	board = game.board()
	if !board.GameOver || !board.Won || board.TargetWord != TestWordCat || board.Outcome != "won" {
		t.Errorf("board = %+v, want a won game revealing %q", board, TestWordCat)
	}
}
