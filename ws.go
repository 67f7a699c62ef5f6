package main

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"viselica/internal/types"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 512
)

// newUpgrader only accepts same-origin pages in production.
func (app *App) newUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if !app.IsProduction {
				return true
			}
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
}

// wsHandler turns a WebSocket into the keystroke stream of the caller's session.
// Frames are handled one at a time, in arrival order.
func (app *App) wsHandler(c *gin.Context) {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || !isValidSessionID(sessionID) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrorNoSession})
		return
	}

	upgrader := app.newUpgrader()
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logWarn("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go wsPinger(ctx, conn)

	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	logInfo("WebSocket connected for session: %s", sessionID)
	for {
		var msg types.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logWarn("WebSocket read error for session %s: %v", sessionID, err)
			}
			break
		}
		reply := app.handleClientMessage(ctx, sessionID, c.ClientIP(), msg)
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			logWarn("WebSocket write error for session %s: %v", sessionID, err)
			break
		}
	}
	logInfo("WebSocket closed for session: %s", sessionID)
}

// handleClientMessage decides one frame and builds the reply. Keys share the
// client's rate limit with POST /guess.
func (app *App) handleClientMessage(ctx context.Context, sessionID, clientKey string, msg types.ClientMessage) types.ServerMessage {
	switch msg.Type {
	case types.MessageKey:
		if !app.limiterFor(clientKey).Allow() {
			return types.ServerMessage{Type: types.MessageError, Error: ErrorTooManyReqs}
		}
		game, err := app.getGameState(ctx, sessionID)
		if err != nil {
			return types.ServerMessage{Type: types.MessageError, Error: ErrorNoSession}
		}
		toasts := &toastCollector{}
		_, _ = app.applyLetter(ctx, sessionID, game, msg.Key, toasts)
		board := game.board()
		return types.ServerMessage{Type: types.MessageState, Board: &board, Toasts: toasts.toasts}

	case types.MessageNewGame:
		app.dropGameState(sessionID)
		game, needsReset, err := app.createNewGameWithCompletedWords(ctx, sessionID, app.validCompletedWords(msg.CompletedWords))
		if err != nil {
			return types.ServerMessage{Type: types.MessageError, Error: ErrorNoSession}
		}
		board := game.board()
		return types.ServerMessage{Type: types.MessageState, Board: &board, ClearCompletedWords: needsReset}

	case "":
		return types.ServerMessage{Type: types.MessageError, Error: ErrorBadMessage}
	default:
		return types.ServerMessage{Type: types.MessageError, Error: ErrorUnknownMessage}
	}
}

// wsPinger keeps idle connections alive until ctx ends.
func wsPinger(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
