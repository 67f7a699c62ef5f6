package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// getOrCreateSession retrieves the session ID from the cookie or creates a new one.
func (app *App) getOrCreateSession(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !isValidSessionID(sessionID) {
		sessionID = uuid.NewString()
		app.setSessionCookie(c, sessionID)
		logInfo("Created new session: %s", sessionID)
	}
	return sessionID
}

func (app *App) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, sessionID, int(app.CookieMaxAge.Seconds()), "/", "", app.IsProduction, true)
}

// isValidSessionID accepts only UUIDs, which also keeps session file names safe.
func isValidSessionID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// getGameState retrieves the session's round from memory, then disk, creating one
// when neither has it.
func (app *App) getGameState(ctx context.Context, sessionID string) (*GameState, error) {
	app.SessionMutex.Lock()
	game, exists := app.GameSessions[sessionID]
	if exists {
		game.LastAccessTime = time.Now()
	}
	app.SessionMutex.Unlock()
	if exists {
		return game, nil
	}

	if loaded, err := app.loadGameSessionFromFile(sessionID); err == nil {
		app.SessionMutex.Lock()
		if existing, ok := app.GameSessions[sessionID]; ok {
			loaded = existing
		} else {
			app.GameSessions[sessionID] = loaded
		}
		app.SessionMutex.Unlock()
		logInfo("Restored game state from disk for session: %s", sessionID)
		return loaded, nil
	}

	logInfo("Creating new game for session: %s", sessionID)
	return app.createNewGame(ctx, sessionID)
}

// saveGameState refreshes and persists the session's current round. A round that
// was replaced by a new game in the meantime is left out, so it never overwrites
// its successor. Callers hold game.mu.
func (app *App) saveGameState(sessionID string, game *GameState) bool {
	app.SessionMutex.Lock()
	if cur, ok := app.GameSessions[sessionID]; !ok || cur != game {
		app.SessionMutex.Unlock()
		logInfo("Discarding update to replaced round for session: %s", sessionID)
		return false
	}
	game.LastAccessTime = time.Now()
	app.SessionMutex.Unlock()
	app.persist(sessionID, game)
	return true
}

// dropGameState forgets a session's round in memory and on disk.
func (app *App) dropGameState(sessionID string) {
	app.SessionMutex.Lock()
	delete(app.GameSessions, sessionID)
	app.SessionMutex.Unlock()
	app.removeGameSessionFile(sessionID)
	logInfo("Cleared old session data for: %s", sessionID)
}

// cleanupExpiredSessions removes in-memory sessions idle longer than the timeout.
func (app *App) cleanupExpiredSessions(now time.Time) int {
	app.SessionMutex.Lock()
	defer app.SessionMutex.Unlock()
	removed := 0
	for sessionID, game := range app.GameSessions {
		if game.LastAccessTime.IsZero() || now.Sub(game.LastAccessTime) > app.SessionTimeout {
			delete(app.GameSessions, sessionID)
			removed++
		}
	}
	return removed
}

// activeSessions counts rounds held in memory.
func (app *App) activeSessions() int {
	app.SessionMutex.RLock()
	defer app.SessionMutex.RUnlock()
	return len(app.GameSessions)
}

// startSessionCleanup sweeps memory and disk every interval until ctx is done.
func (app *App) startSessionCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logInfo("Session cleanup scheduler stopped")
				return
			case now := <-ticker.C:
				removed := app.cleanupExpiredSessions(now)
				if removed > 0 {
					logInfo("Removed %d expired in-memory sessions", removed)
				}
				if err := app.cleanupOldSessions(app.SessionTimeout); err != nil {
					logWarn("Session file cleanup failed: %v", err)
				}
			}
		}
	}()
}
