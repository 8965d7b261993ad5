package primitives

import (
	"fmt"
	"sort"
	"strings"
)

// Alphabet is the set of letters a puzzle draws from.
//
// The full letter set is what words may be written in (it can carry
// diacritics); the padding set is what random filler cells are drawn from:
// diacritics stripped, deduplicated, restricted to A-Z.
type Alphabet struct {
	letters []rune
	padding []rune
}

const (
	czechLetters = "AÁBCČDĎEÉĚFGHIÍJKLĽMNŇOÓPQRŘSŠTŤUÚŮVWXYÝZŽ"
	basicLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewAlphabet builds an alphabet from its full letter set. It fails when no
// plain A-Z letter survives diacritic stripping, since the padding set would
// be empty and filler cells would have nothing to draw from.
func NewAlphabet(letters string) (*Alphabet, error) {
	seen := make(map[rune]bool)
	var padding []rune
	for _, r := range StripDiacritics(strings.ToUpper(letters)) {
		if r < 'A' || r > 'Z' || seen[r] {
			continue
		}
		seen[r] = true
		padding = append(padding, r)
	}
	if len(padding) == 0 {
		return nil, fmt.Errorf("alphabet %q has no A-Z letters", letters)
	}
	sort.Slice(padding, func(i, j int) bool { return padding[i] < padding[j] })

	return &Alphabet{
		letters: []rune(strings.ToUpper(letters)),
		padding: padding,
	}, nil
}

// Czech is the default alphabet of the original puzzles, diacritics included.
func Czech() *Alphabet {
	a, err := NewAlphabet(czechLetters)
	if err != nil {
		panic(err)
	}
	return a
}

// Basic is the plain A-Z alphabet.
func Basic() *Alphabet {
	a, err := NewAlphabet(basicLetters)
	if err != nil {
		panic(err)
	}
	return a
}

// Named resolves an alphabet by its CLI/API name.
func Named(name string) (*Alphabet, error) {
	switch name {
	case "", "cz":
		return Czech(), nil
	case "az":
		return Basic(), nil
	}
	return nil, fmt.Errorf("unknown alphabet %q (want cz or az)", name)
}

// Letters returns the full letter set.
func (a *Alphabet) Letters() []rune {
	return a.letters
}

// Padding returns the sorted, deduplicated A-Z letters used for filler cells.
func (a *Alphabet) Padding() []rune {
	return a.padding
}

// Contains checks if a letter is in the full set.
func (a *Alphabet) Contains(r rune) bool {
	for _, l := range a.letters {
		if l == r {
			return true
		}
	}
	return false
}

func (a *Alphabet) String() string {
	return string(a.letters)
}
