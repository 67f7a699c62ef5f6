package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// homeHandler renders the main game page for the current session.
func (app *App) homeHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	game, err := app.getGameState(c.Request.Context(), sessionID)
	if err != nil {
		logWarn("Failed to load game for session %s: %v", sessionID, err)
		c.String(http.StatusInternalServerError, ErrorNoSession)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":   PageTitle,
		"message": PageMessage,
		"board":   game.board(),
	})
}

// gameStateHandler renders the current game board as an HTML fragment.
func (app *App) gameStateHandler(c *gin.Context) {
	sessionID := app.getOrCreateSession(c)
	game, err := app.getGameState(c.Request.Context(), sessionID)
	if err != nil {
		logWarn("Failed to load game for session %s: %v", sessionID, err)
		c.String(http.StatusInternalServerError, ErrorNoSession)
		return
	}
	c.HTML(http.StatusOK, "game-content", gin.H{"board": game.board()})
}

// guessHandler submits one keystroke and re-renders the board. Duplicate letters and
// round endings ride along as an HX-Trigger toast.
func (app *App) guessHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	game, err := app.getGameState(ctx, sessionID)
	if err != nil {
		logWarn("Failed to load game for session %s: %v", sessionID, err)
		c.String(http.StatusInternalServerError, ErrorNoSession)
		return
	}

	toasts := &toastCollector{}
	// rejected letters leave the board untouched, so the error only matters for logging
	_, _ = app.applyLetter(ctx, sessionID, game, c.PostForm("letter"), toasts)
	toasts.writeHXTrigger(c)

	c.HTML(http.StatusOK, "game-content", gin.H{"board": game.board()})
}

// newGameHandler replaces the session's round, optionally rotating the session ID.
func (app *App) newGameHandler(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := app.getOrCreateSession(c)
	logInfo("Creating new game for session: %s", sessionID)

	var completedWords []string
	if c.Request.Method == http.MethodPost {
		if raw := c.PostForm("completedWords"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &completedWords); err != nil {
				logWarn("Failed to parse completed words: %v", err)
				completedWords = nil
			} else {
				completedWords = app.validCompletedWords(completedWords)
			}
		}
	}

	app.dropGameState(sessionID)

	if c.Query("reset") == "1" {
		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(SessionCookieName, "", -1, "/", "", app.IsProduction, true)
		sessionID = uuid.NewString()
		app.setSessionCookie(c, sessionID)
		logInfo("Created new session ID: %s", sessionID)
	}

	game, needsReset, err := app.createNewGameWithCompletedWords(ctx, sessionID, completedWords)
	if err != nil {
		logWarn("Failed to create game for session %s: %v", sessionID, err)
		c.String(http.StatusInternalServerError, ErrorNoSession)
		return
	}
	if needsReset {
		c.Header("HX-Trigger", "clear-completed-words")
	}

	if c.GetHeader("HX-Request") == "true" {
		c.HTML(http.StatusOK, "game-content", gin.H{"board": game.board(), "newGame": true})
		return
	}
	c.Redirect(http.StatusSeeOther, RouteHome)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"words_loaded":    len(app.Catalog),
		"alphabet":        app.Alphabet.Name(),
		"active_sessions": app.activeSessions(),
		"uptime":          formatUptime(uptime),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

