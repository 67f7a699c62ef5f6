package main

import (
	"context"
	"errors"
	"time"

	"viselica/internal/hangman"
)

// createNewGame starts a round for a session and stores it.
func (app *App) createNewGame(ctx context.Context, sessionID string) (*GameState, error) {
	game, _, err := app.createNewGameWithCompletedWords(ctx, sessionID, nil)
	return game, err
}

// createNewGameWithCompletedWords starts a round drawn from the words this session
// has not completed yet. The bool reports that every word was completed.
func (app *App) createNewGameWithCompletedWords(ctx context.Context, sessionID string, completedWords []string) (*GameState, bool, error) {
	reqID, _ := ctx.Value(requestIDKey).(string)

	catalog, needsReset := app.catalogExcluding(completedWords)
	session, err := hangman.New(catalog, app.sessionConfig())
	if err != nil {
		return nil, false, err
	}
	game := &GameState{Session: session, LastAccessTime: time.Now()}
	app.persist(sessionID, game)

	app.SessionMutex.Lock()
	app.GameSessions[sessionID] = game
	app.SessionMutex.Unlock()

	logInfo("[request_id=%v] New game created for session %s (hint: %s, completed words: %d, needs reset: %v)",
		reqID, sessionID, session.Hint(), len(completedWords), needsReset)
	return game, needsReset, nil
}

// applyLetter submits one keystroke to the session's round, reports it to n and
// persists the result.
func (app *App) applyLetter(ctx context.Context, sessionID string, game *GameState, input string, n Notifier) (hangman.GuessResult, error) {
	reqID, _ := ctx.Value(requestIDKey).(string)

	game.mu.Lock()
	defer game.mu.Unlock()

	res, err := game.Session.SubmitLetter(input)
	notifyGuess(n, res, err)

	switch {
	case errors.Is(err, hangman.ErrInvalidInput):
		return res, err
	case errors.Is(err, hangman.ErrSessionTerminal):
		logWarn("[request_id=%v] Session %s attempted guess on completed game", reqID, sessionID)
		return res, err
	case errors.Is(err, hangman.ErrDuplicateGuess):
		logInfo("[request_id=%v] Session %s repeated letter %c", reqID, sessionID, res.Letter)
		return res, err
	case err != nil:
		return res, err
	}

	logInfo("[request_id=%v] Session %s guessed %c: %s (%d/%d wrong)",
		reqID, sessionID, res.Letter, res.Verdict, len(game.Session.WrongLetters()), game.Session.MaxWrongGuesses())
	if res.Won {
		logInfo("[request_id=%v] Player won! Target word was: %s", reqID, game.Session.Target().Word)
	}
	if res.Lost {
		logInfo("[request_id=%v] Player lost. Target word was: %s", reqID, game.Session.Target().Word)
	}

	app.saveGameState(sessionID, game)
	return res, nil
}
