package wordsearch

import (
	"math/rand/v2"
	"sort"

	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

// maxTrials caps the random search for a single word. Placement is
// Monte-Carlo rather than exhaustive: a word that never finds a legal spot
// within the cap is left out of the puzzle, which is a normal outcome.
const maxTrials = 1000

// Config selects the subset of the 8 compass directions a puzzle may use.
type Config struct {
	AllowDiagonals bool
	AllowBackwards bool
}

// Placement records where a successfully placed word starts and which way it runs.
type Placement struct {
	Word string
	X, Y int
	Dir  Direction
}

// Generator places words into square grids.
type Generator struct {
	Size   int
	Words  []string
	Config Config

	rand *rand.Rand
}

// CreateGenerator builds a Generator over an already-normalized word list
// (uppercase, no whitespace). The random source is injected so callers can
// seed it for reproducible puzzles.
func CreateGenerator(size int, words []string, config Config, rand *rand.Rand) *Generator {
	return &Generator{
		Size:   size,
		Words:  words,
		Config: config,
		rand:   rand,
	}
}

// canPlace reports whether word can be written starting at (x, y) along dir
// without leaving the grid or contradicting an existing letter. A cell that
// already holds the same rune the word needs there is fine, which is how
// words cross and share letters.
func canPlace(g *Grid, x, y int, dir Direction, word []rune) bool {
	n := g.Size()
	for i, r := range word {
		cx, cy := x+dir.DX*i, y+dir.DY*i
		if cx < 0 || cy < 0 || cx >= n || cy >= n {
			return false
		}
		if cell := g.At(cx, cy); cell != 0 && cell != r {
			return false
		}
	}
	return true
}

// writeWord commits an already-verified placement. Callers must have checked
// canPlace first; the write is all-or-nothing so the grid never holds a
// partial word.
func writeWord(g *Grid, x, y int, dir Direction, word []rune) {
	for i, r := range word {
		g.set(x+dir.DX*i, y+dir.DY*i, r)
	}
}

// newCells counts how many cells of the placement are still empty, i.e. how
// many the word would consume rather than share.
func newCells(g *Grid, x, y int, dir Direction, word []rune) int {
	count := 0
	for i := range word {
		if g.Empty(x+dir.DX*i, y+dir.DY*i) {
			count++
		}
	}
	return count
}

// tryPlace runs bounded random trials to place one word. Each trial draws a
// direction and an origin uniformly from the valid range for that direction,
// then collision-checks. With reserved > 0 a trial is also rejected when
// accepting it would leave fewer than reserved empty cells for the hidden
// phrase; that depends on how much the trial overlaps existing letters, so
// it is re-evaluated every trial.
func (g *Generator) tryPlace(grid *Grid, allowed []Direction, word []rune, reserved int) (Placement, bool) {
	n := grid.Size()
	for range maxTrials {
		dir := allowed[g.rand.IntN(len(allowed))]

		minX, maxX := 0, n-1
		if dir.DX > 0 {
			maxX = n - len(word)
		} else if dir.DX < 0 {
			minX = len(word) - 1
		}
		minY, maxY := 0, n-1
		if dir.DY > 0 {
			maxY = n - len(word)
		} else if dir.DY < 0 {
			minY = len(word) - 1
		}

		x := minX + g.rand.IntN(maxX-minX+1)
		y := minY + g.rand.IntN(maxY-minY+1)

		if !canPlace(grid, x, y, dir, word) {
			continue
		}
		if reserved > 0 && grid.EmptyCount()-newCells(grid, x, y, dir, word) < reserved {
			continue
		}

		writeWord(grid, x, y, dir, word)
		return Placement{Word: string(word), X: x, Y: y, Dir: dir}, true
	}
	return Placement{}, false
}

// PlaceWords greedily schedules the generator's words into a fresh grid.
//
// Words longer than the grid side are skipped. The rest are attempted longest
// first, with equal-length words in random order, so long words see the
// emptiest grid while the puzzle still varies between runs. Words that
// exhaust their trials are simply absent from the result.
//
// With reservedCells > 0 the scheduler guarantees at least that many cells
// stay empty for a hidden phrase.
func (g *Generator) PlaceWords(reservedCells int) (*Grid, []Placement) {
	grid := NewGrid(g.Size)
	allowed := AllowedDirections(g.Config.AllowDiagonals, g.Config.AllowBackwards)

	pool := make([][]rune, 0, len(g.Words))
	for _, w := range g.Words {
		if word := []rune(w); len(word) <= g.Size {
			pool = append(pool, word)
		}
	}
	g.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	sort.SliceStable(pool, func(i, j int) bool {
		return len(pool[i]) > len(pool[j])
	})

	var placed []Placement
	for _, word := range pool {
		if p, ok := g.tryPlace(grid, allowed, word, reservedCells); ok {
			placed = append(placed, p)
		}
	}
	return grid, placed
}

// Page is one completely generated puzzle: the filled grid, the words that
// made it in, and the hidden phrase if one was embedded.
type Page struct {
	Grid       *Grid
	Placements []Placement
	Phrase     string
}

// GeneratePage runs one full generation: greedy placement, then either
// hidden-phrase fill or plain random fill of the leftover cells.
func (g *Generator) GeneratePage(alphabet *primitives.Alphabet, phrase string) Page {
	reserved := len([]rune(phrase))
	grid, placed := g.PlaceWords(reserved)
	if reserved > 0 {
		FillWithPhrase(grid, alphabet, phrase, g.rand)
	} else {
		FillRandom(grid, alphabet, g.rand)
	}
	return Page{Grid: grid, Placements: placed, Phrase: phrase}
}

// PlacedWords extracts just the words from a list of placements, in
// placement order.
func PlacedWords(placements []Placement) []string {
	words := make([]string, len(placements))
	for i, p := range placements {
		words[i] = p.Word
	}
	return words
}
