package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"viselica/internal/hangman"
)

// WordList is the JSON layout of the catalog file.
type WordList struct {
	Words []hangman.WordEntry `json:"words"`
}

// loadCatalog reads the catalog file and keeps only entries playable in alphabet.
func loadCatalog(path string, alphabet hangman.Alphabet) ([]hangman.WordEntry, error) {
	logInfo("Loading words from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return normalizeCatalog(wl.Words, alphabet)
}

// normalizeCatalog lowercases words, drops unplayable entries and duplicates.
func normalizeCatalog(entries []hangman.WordEntry, alphabet hangman.Alphabet) ([]hangman.WordEntry, error) {
	normalized := lo.Map(entries, func(entry hangman.WordEntry, _ int) hangman.WordEntry {
		return hangman.WordEntry{
			Word: strings.ToLower(strings.TrimSpace(entry.Word)),
			Hint: strings.TrimSpace(entry.Hint),
		}
	})
	playable := lo.Filter(normalized, func(entry hangman.WordEntry, _ int) bool {
		if !alphabet.Playable(entry.Word) {
			logWarn("Skipping word %q: not playable in the %s alphabet", entry.Word, alphabet.Name())
			return false
		}
		return true
	})
	catalog := lo.UniqBy(playable, func(entry hangman.WordEntry) string {
		return entry.Word
	})
	if len(catalog) == 0 {
		return nil, hangman.ErrEmptyCatalog
	}
	return catalog, nil
}

// buildWordSet creates a lookup set of catalog words.
func buildWordSet(catalog []hangman.WordEntry) map[string]struct{} {
	return lo.SliceToMap(catalog, func(entry hangman.WordEntry) (string, struct{}) {
		return entry.Word, struct{}{}
	})
}

// catalogExcluding returns the entries not yet completed by the player. When every
// word is completed it returns the full catalog and true, so the client can clear its list.
func (app *App) catalogExcluding(completedWords []string) ([]hangman.WordEntry, bool) {
	if len(completedWords) == 0 {
		return app.Catalog, false
	}
	available := lo.Filter(app.Catalog, func(entry hangman.WordEntry, _ int) bool {
		return !slices.Contains(completedWords, entry.Word)
	})
	if len(available) == 0 {
		logInfo("All words completed, reset needed. Total words: %d, Completed: %d", len(app.Catalog), len(completedWords))
		return app.Catalog, true
	}
	return available, false
}

// validCompletedWords keeps only words that exist in the catalog.
func (app *App) validCompletedWords(words []string) []string {
	return lo.FilterMap(words, func(word string, _ int) (string, bool) {
		word = strings.ToLower(strings.TrimSpace(word))
		_, exists := app.WordSet[word]
		if !exists {
			logWarn("Invalid completed word ignored: %s", word)
		}
		return word, exists
	})
}
