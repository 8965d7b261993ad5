// Package wordlist normalizes raw word and phrase lists into the form the
// generator expects: uppercase tokens with no whitespace, deduplicated.
package wordlist

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

func splitEntries(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
}

func dropSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Parse splits text on commas, semicolons and newlines and normalizes each
// entry: trimmed, uppercased, inner whitespace removed, optionally with
// diacritics stripped. The result is deduplicated and sorted.
func Parse(text string, stripDiacritics bool) []string {
	seen := make(map[string]bool)
	var words []string
	for _, entry := range splitEntries(text) {
		w := strings.ToUpper(strings.TrimSpace(entry))
		if stripDiacritics {
			w = primitives.StripDiacritics(w)
		}
		w = dropSpaces(w)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ReadFile loads and parses a word-list file.
func ReadFile(path string, stripDiacritics bool) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return Parse(string(data), stripDiacritics), nil
}

// ReadPhrases loads the hidden-phrase file. Phrases keep their original
// casing and spacing here; NormalizePhrase prepares the chosen one for the
// grid.
func ReadPhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading phrases: %w", err)
	}
	var phrases []string
	for _, entry := range splitEntries(string(data)) {
		if p := strings.TrimSpace(entry); p != "" {
			phrases = append(phrases, p)
		}
	}
	return phrases, nil
}

// NormalizePhrase uppercases a hidden phrase and removes every whitespace
// rune, which is the form embedded into the grid cell by cell.
func NormalizePhrase(s string) string {
	return dropSpaces(strings.ToUpper(strings.TrimSpace(s)))
}
