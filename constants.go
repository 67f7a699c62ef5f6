package main

// Figure parts in reveal order. Their count is the wrong-guess budget.
var FigureParts = []string{"head", "body", "left-arm", "right-arm", "left-leg", "right-leg"}

// MaxWrongGuesses is fixed by the drawing, not by configuration.
var MaxWrongGuesses = len(FigureParts)

// Session configuration constants
const (
	SessionCookieName = "session_id"
)

// Route constants
const (
	RouteHome      = "/"
	RouteNewGame   = "/new-game"
	RouteGuess     = "/guess"
	RouteGameState = "/game-state"
	RouteWS        = "/ws"
	RouteHealthz   = "/healthz"
)

// Page text
const (
	PageTitle   = "Виселица"
	PageMessage = "Угадайте скрытое слово: вводите буквы с клавиатуры"
)

// Toast messages
const (
	ToastWon       = "Поздравляем! Вы выиграли!"
	ToastDuplicate = "Вы уже вводили эту букву"
	ToastLost      = "К сожалению, вы проиграли."
)

// Error message constants
const (
	ErrorNoSession      = "No game session."
	ErrorUnknownMessage = "Unknown message type."
	ErrorBadMessage     = "Malformed message."
	ErrorTooManyReqs    = "Too many requests. Please slow down."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)

type contextKey string
