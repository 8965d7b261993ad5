package wordsearch

import (
	"math/rand/v2"

	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

// FillRandom writes an independent, uniformly random padding letter into
// every cell the scheduler left empty.
func FillRandom(g *Grid, alphabet *primitives.Alphabet, rand *rand.Rand) {
	padding := alphabet.Padding()
	n := g.Size()
	for y := range n {
		for x := range n {
			if g.Empty(x, y) {
				g.set(x, y, padding[rand.IntN(len(padding))])
			}
		}
	}
}

// FillWithPhrase embeds the hidden phrase into the grid's empty cells in
// row-major scan order, one rune per cell, then pads any remaining empties
// with random letters. A phrase longer than the number of empty cells is
// silently truncated; callers reserve cells during scheduling to avoid that.
func FillWithPhrase(g *Grid, alphabet *primitives.Alphabet, phrase string, rand *rand.Rand) {
	padding := alphabet.Padding()
	letters := []rune(phrase)
	n := g.Size()
	i := 0
	for y := range n {
		for x := range n {
			if !g.Empty(x, y) {
				continue
			}
			if i < len(letters) {
				g.set(x, y, letters[i])
			} else {
				g.set(x, y, padding[rand.IntN(len(padding))])
			}
			i++
		}
	}
}
