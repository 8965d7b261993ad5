package wordsearch

import (
	"math/rand/v2"
	"testing"

	"github.com/hugoTheClown/WordSearchGenerator/pkg/primitives"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 1024))
}

// readBack re-reads a placement's cells from the grid and checks they spell
// the word.
func readBack(t *testing.T, g *Grid, p Placement) {
	t.Helper()
	for i, r := range []rune(p.Word) {
		cx, cy := p.X+p.Dir.DX*i, p.Y+p.Dir.DY*i
		if got := g.At(cx, cy); got != r {
			t.Errorf("placement %v: cell (%d,%d) = %q, want %q", p, cx, cy, got, r)
		}
	}
}

func TestPlaceWords_SmallGrid(t *testing.T) {
	gen := CreateGenerator(5, []string{"CAT", "DOG"}, Config{
		AllowDiagonals: true,
		AllowBackwards: true,
	}, newRand(42))

	grid, placed := gen.PlaceWords(0)

	if len(placed) != 2 {
		t.Fatalf("placed %d words, want 2: %v", len(placed), placed)
	}
	for _, p := range placed {
		readBack(t, grid, p)
	}

	FillRandom(grid, primitives.Basic(), newRand(7))
	if grid.EmptyCount() != 0 {
		t.Errorf("grid has %d empty cells after fill, want 0", grid.EmptyCount())
	}
	for y := range grid.Size() {
		for x := range grid.Size() {
			if r := grid.At(x, y); r < 'A' || r > 'Z' {
				t.Errorf("cell (%d,%d) = %q, want a letter", x, y, r)
			}
		}
	}
}

func TestPlaceWords_SkipsWordsLongerThanGrid(t *testing.T) {
	gen := CreateGenerator(3, []string{"ELEPHANT"}, Config{
		AllowDiagonals: true,
		AllowBackwards: true,
	}, newRand(1))

	grid, placed := gen.PlaceWords(0)

	if len(placed) != 0 {
		t.Fatalf("placed %v, want nothing", placed)
	}
	if grid.EmptyCount() != 9 {
		t.Errorf("empty count = %d, want 9", grid.EmptyCount())
	}

	FillRandom(grid, primitives.Basic(), newRand(2))
	if grid.EmptyCount() != 0 {
		t.Errorf("grid has %d empty cells after fill, want 0", grid.EmptyCount())
	}
}

func TestPlaceWords_ReservesCellsForPhrase(t *testing.T) {
	words := []string{"HOUSE", "RIVER", "STONE", "CLOUD", "GRASS"}
	phrase := "HELLOWORLDOK" // 12 letters

	gen := CreateGenerator(10, words, Config{
		AllowDiagonals: true,
		AllowBackwards: true,
	}, newRand(99))

	grid, _ := gen.PlaceWords(len(phrase))

	if grid.EmptyCount() < len(phrase) {
		t.Fatalf("only %d empty cells remain, need at least %d", grid.EmptyCount(), len(phrase))
	}

	// Remember the empty cells in row-major order, then fill.
	var empties [][2]int
	for y := range grid.Size() {
		for x := range grid.Size() {
			if grid.Empty(x, y) {
				empties = append(empties, [2]int{x, y})
			}
		}
	}

	FillWithPhrase(grid, primitives.Basic(), phrase, newRand(5))

	for i, r := range []rune(phrase) {
		x, y := empties[i][0], empties[i][1]
		if got := grid.At(x, y); got != r {
			t.Errorf("phrase letter %d: cell (%d,%d) = %q, want %q", i, x, y, got, r)
		}
	}
	if grid.EmptyCount() != 0 {
		t.Errorf("grid has %d empty cells after fill, want 0", grid.EmptyCount())
	}
}

func TestPlaceWords_DirectionRestrictions(t *testing.T) {
	words := []string{"ALPHA", "BRAVO", "DELTA", "ECHO", "GOLF", "HOTEL"}

	tests := []struct {
		name   string
		config Config
		check  func(Direction) bool
	}{
		{
			name:   "no diagonals",
			config: Config{AllowDiagonals: false, AllowBackwards: true},
			check:  func(d Direction) bool { return !d.Diagonal() },
		},
		{
			name:   "no backwards",
			config: Config{AllowDiagonals: true, AllowBackwards: false},
			check:  func(d Direction) bool { return d.Forward() },
		},
		{
			name:   "east and south only",
			config: Config{AllowDiagonals: false, AllowBackwards: false},
			check:  func(d Direction) bool { return d.Label == "E" || d.Label == "S" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				gen := CreateGenerator(8, words, tt.config, newRand(seed))
				grid, placed := gen.PlaceWords(0)
				if len(placed) == 0 {
					t.Fatalf("seed %d: no words placed", seed)
				}
				for _, p := range placed {
					if !tt.check(p.Dir) {
						t.Errorf("seed %d: word %s placed along forbidden direction %s", seed, p.Word, p.Dir)
					}
					readBack(t, grid, p)
				}
			}
		})
	}
}

func TestPlaceWords_LongestFirst(t *testing.T) {
	words := []string{"AB", "ABCDEF", "ABCD", "XY", "QRSTU"}
	gen := CreateGenerator(12, words, Config{
		AllowDiagonals: true,
		AllowBackwards: true,
	}, newRand(3))

	_, placed := gen.PlaceWords(0)

	for i := 1; i < len(placed); i++ {
		if len(placed[i].Word) > len(placed[i-1].Word) {
			t.Errorf("placement order not longest-first: %q after %q",
				placed[i].Word, placed[i-1].Word)
		}
	}
}

func TestPlaceWords_Deterministic(t *testing.T) {
	words := []string{"ORANGE", "BANANA", "CHERRY", "GRAPE", "LEMON"}

	run := func() string {
		gen := CreateGenerator(9, words, Config{AllowDiagonals: true, AllowBackwards: true}, newRand(1234))
		grid, _ := gen.PlaceWords(0)
		FillRandom(grid, primitives.Basic(), newRand(5678))
		return grid.Repr()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed produced different grids:\n%s\n---\n%s", a, b)
	}
}

func TestCanPlace(t *testing.T) {
	east := Directions[0]
	south := Directions[1]

	grid := NewGrid(4)
	writeWord(grid, 0, 0, east, []rune("CAT"))

	tests := []struct {
		name string
		x, y int
		dir  Direction
		word string
		want bool
	}{
		{"fits in empty row", 0, 2, east, "DOG", true},
		{"out of bounds right", 2, 0, east, "DOG", false},
		{"out of bounds bottom", 0, 2, south, "BIRD", false},
		{"conflicts with existing letter", 0, 0, east, "DOG", false},
		{"shares a letter legally", 1, 0, south, "ARM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canPlace(grid, tt.x, tt.y, tt.dir, []rune(tt.word))
			if got != tt.want {
				t.Errorf("canPlace = %v, want %v", got, tt.want)
			}
			// Pure predicate: asking twice changes nothing.
			if again := canPlace(grid, tt.x, tt.y, tt.dir, []rune(tt.word)); again != got {
				t.Errorf("second canPlace = %v, first was %v", again, got)
			}
		})
	}

	if grid.EmptyCount() != 16-3 {
		t.Errorf("canPlace mutated the grid: empty count = %d, want 13", grid.EmptyCount())
	}
}

func TestGeneratePage(t *testing.T) {
	gen := CreateGenerator(10, []string{"WIND", "RAIN", "SNOW"}, Config{
		AllowDiagonals: true,
		AllowBackwards: true,
	}, newRand(77))

	page := gen.GeneratePage(primitives.Czech(), "TAJNAZPRAVA")

	if page.Grid.EmptyCount() != 0 {
		t.Errorf("page grid has %d empty cells, want 0", page.Grid.EmptyCount())
	}
	if page.Phrase != "TAJNAZPRAVA" {
		t.Errorf("page phrase = %q", page.Phrase)
	}
	if len(page.Placements) == 0 {
		t.Error("no words placed on page")
	}
	for _, p := range page.Placements {
		readBack(t, page.Grid, p)
	}
}
