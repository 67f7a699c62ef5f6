package types

// Severity of a toast notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Toast struct {
	Message string   `json:"message"`
	Level   Severity `json:"level"`
}

type Slot struct {
	Letter   string `json:"letter"`
	Revealed bool   `json:"revealed"`
}

type FigurePart struct {
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
}

// BoardView is everything the page needs to draw one round.
type BoardView struct {
	Hint             string       `json:"hint"`
	Mask             []Slot       `json:"mask"`
	WrongLetters     []string     `json:"wrongLetters"`
	Figure           []FigurePart `json:"figure"`
	MaxWrongGuesses  int          `json:"maxWrongGuesses"`
	RemainingGuesses int          `json:"remainingGuesses"`
	Outcome          string       `json:"outcome"`
	GameOver         bool         `json:"gameOver"`
	Won              bool         `json:"won"`
	TargetWord       string       `json:"targetWord,omitempty"` // revealed only once the round is over
}

// Client -> server WebSocket frame types.
const (
	MessageKey     = "key"
	MessageNewGame = "new-game"
)

// Server -> client WebSocket frame types.
const (
	MessageState = "state"
	MessageError = "error"
)

type ClientMessage struct {
	Type           string   `json:"type"`
	Key            string   `json:"key,omitempty"`
	CompletedWords []string `json:"completedWords,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	Board  *BoardView `json:"board,omitempty"`
	Toasts []Toast    `json:"toasts,omitempty"`
	Error  string     `json:"error,omitempty"`
	// ClearCompletedWords asks the client to forget its completed words, every
	// catalog entry having been played.
	ClearCompletedWords bool `json:"clearCompletedWords,omitempty"`
}
