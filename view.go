package main

import (
	"github.com/samber/lo"

	"viselica/internal/hangman"
	"viselica/internal/types"
)

// buildBoardView turns a session's queries into what the page draws.
func buildBoardView(s *hangman.Session) types.BoardView {
	wrong := s.WrongLetters()
	outcome := s.Outcome()

	view := types.BoardView{
		Hint: s.Hint(),
		Mask: lo.Map(s.Mask(), func(slot hangman.Slot, _ int) types.Slot {
			if !slot.Revealed {
				return types.Slot{}
			}
			return types.Slot{Letter: string(slot.Letter), Revealed: true}
		}),
		WrongLetters: lo.Map(wrong, func(r rune, _ int) string { return string(r) }),
		Figure: lo.Map(FigureParts, func(name string, i int) types.FigurePart {
			return types.FigurePart{Name: name, Visible: i < len(wrong)}
		}),
		MaxWrongGuesses:  s.MaxWrongGuesses(),
		RemainingGuesses: s.RemainingGuesses(),
		Outcome:          outcome.String(),
		GameOver:         outcome != hangman.InProgress,
		Won:              outcome == hangman.Won,
	}
	if view.GameOver {
		view.TargetWord = s.Target().Word
	}
	return view
}

// board builds the view under the session lock.
func (g *GameState) board() types.BoardView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return buildBoardView(g.Session)
}
