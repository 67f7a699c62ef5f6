package main

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"viselica/internal/hangman"
	"viselica/internal/types"
)

// Notifier shows a toast to the player. Fire and forget.
type Notifier interface {
	Notify(message string, severity types.Severity)
}

// notifyGuess maps a keystroke result onto the three events the player hears about.
// Invalid and post-game input stay silent.
func notifyGuess(n Notifier, res hangman.GuessResult, err error) {
	if n == nil {
		return
	}
	switch {
	case errors.Is(err, hangman.ErrDuplicateGuess):
		n.Notify(ToastDuplicate, types.SeverityWarning)
	case err != nil:
		return
	case res.Won:
		n.Notify(ToastWon, types.SeveritySuccess)
	case res.Lost:
		n.Notify(ToastLost, types.SeverityError)
	}
}

// toastCollector buffers toasts so they can ride along with a response.
type toastCollector struct {
	toasts []types.Toast
}

func (tc *toastCollector) Notify(message string, severity types.Severity) {
	tc.toasts = append(tc.toasts, types.Toast{Message: message, Level: severity})
}

// writeHXTrigger emits collected toasts as an HTMX "toast" event.
func (tc *toastCollector) writeHXTrigger(c *gin.Context) {
	if len(tc.toasts) == 0 {
		return
	}
	payload := map[string]any{"toast": tc.toasts[len(tc.toasts)-1]}
	b, err := json.Marshal(payload)
	if err != nil {
		logWarn("Failed to marshal HX-Trigger payload: %v", err)
		return
	}
	c.Header("HX-Trigger", string(b))
}
