package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"viselica/internal/hangman"
)

// persistenceEnabled is false when SESSIONS_DIR is "none".
func (app *App) persistenceEnabled() bool {
	return app.SessionsDir != "" && app.SessionsDir != "none"
}

func (app *App) sessionFile(sessionID string) string {
	return filepath.Join(app.SessionsDir, sessionID+".json")
}

// persist writes the round to disk, logging instead of failing the request.
// Callers hold game.mu or own game exclusively.
func (app *App) persist(sessionID string, game *GameState) {
	if err := app.saveGameSessionToFile(sessionID, game); err != nil {
		logWarn("Failed to persist session %s: %v", sessionID, err)
	}
}

// saveGameSessionToFile persists a game session to disk
func (app *App) saveGameSessionToFile(sessionID string, game *GameState) error {
	if !app.persistenceEnabled() {
		return nil
	}
	if !isValidSessionID(sessionID) {
		logWarn("Skipping save for invalid session ID: %s", sessionID)
		return nil
	}

	if err := os.MkdirAll(app.SessionsDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(persistedGame{State: game.Session.Snapshot()}, "", "  ")
	if err != nil {
		return err
	}

	// write-then-rename so a crash never leaves half a file behind
	sessionFile := app.sessionFile(sessionID)
	tmp := sessionFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, sessionFile)
}

// loadGameSessionFromFile loads a game session from disk. Expired or corrupted files
// are removed and reported as os.ErrNotExist.
func (app *App) loadGameSessionFromFile(sessionID string) (*GameState, error) {
	if !app.persistenceEnabled() || !isValidSessionID(sessionID) {
		return nil, os.ErrNotExist
	}

	sessionFile := app.sessionFile(sessionID)
	info, err := os.Stat(sessionFile)
	if err != nil {
		return nil, err
	}

	fileAge := time.Since(info.ModTime())
	if fileAge > app.SessionTimeout {
		logInfo("Session file is too old (%v, max: %v), removing: %s", fileAge, app.SessionTimeout, sessionFile)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, err
	}

	var pg persistedGame
	if err := json.Unmarshal(data, &pg); err != nil {
		logWarn("Failed to unmarshal session file %s (corrupted), removing: %v", sessionFile, err)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	session, err := hangman.Restore(pg.State, app.pick)
	if err != nil {
		logWarn("Session file %s failed validation, removing: %v", sessionFile, err)
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}
	if session.Alphabet().Name() != app.Alphabet.Name() {
		logWarn("Session file %s uses alphabet %s, server plays %s, removing", sessionFile, session.Alphabet().Name(), app.Alphabet.Name())
		os.Remove(sessionFile)
		return nil, os.ErrNotExist
	}

	return &GameState{Session: session, LastAccessTime: time.Now()}, nil
}

// removeGameSessionFile deletes a session's file if there is one.
func (app *App) removeGameSessionFile(sessionID string) {
	if !app.persistenceEnabled() || !isValidSessionID(sessionID) {
		return
	}
	if err := os.Remove(app.sessionFile(sessionID)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logWarn("Failed to remove session file for %s: %v", sessionID, err)
	}
}

// cleanupOldSessions removes session files older than maxAge.
func (app *App) cleanupOldSessions(maxAge time.Duration) error {
	if !app.persistenceEnabled() {
		return nil
	}
	entries, err := os.ReadDir(app.SessionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	removedCount := 0
	errorCount := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			errorCount++
			continue
		}
		if info.ModTime().Before(cutoff) {
			sessionFile := filepath.Join(app.SessionsDir, entry.Name())
			if err := os.Remove(sessionFile); err != nil {
				logWarn("Failed to remove old session file %s: %v", sessionFile, err)
				errorCount++
			} else {
				removedCount++
			}
		}
	}

	if removedCount > 0 || errorCount > 0 {
		logInfo("Session cleanup completed: removed %d files, %d errors", removedCount, errorCount)
	}
	return nil
}
