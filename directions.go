package wordsearch

// Direction is a unit offset vector along which a word can be written
// into the grid, tagged with its compass label.
type Direction struct {
	DX, DY int
	Label  string
}

// The 8 compass directions, in the order words are allowed to run.
// E, S, SE and SW are the "forward" half; the other four are their reverses.
var Directions = []Direction{
	{1, 0, "E"}, {0, 1, "S"}, {1, 1, "SE"}, {-1, 1, "SW"},
	{-1, 0, "W"}, {0, -1, "N"}, {-1, -1, "NW"}, {1, -1, "NE"},
}

// Diagonal reports whether the direction moves on both axes.
func (d Direction) Diagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// Forward reports whether the direction reads left-to-right / top-to-bottom.
func (d Direction) Forward() bool {
	switch d.Label {
	case "E", "S", "SE", "SW":
		return true
	}
	return false
}

func (d Direction) String() string {
	return d.Label
}

// AllowedDirections filters the compass table down to the directions a puzzle
// configuration permits. The result is never empty: E and S survive any
// combination of the two flags.
func AllowedDirections(diagonals, backwards bool) []Direction {
	var allowed []Direction
	for _, d := range Directions {
		if !diagonals && d.Diagonal() {
			continue
		}
		if !backwards && !d.Forward() {
			continue
		}
		allowed = append(allowed, d)
	}
	return allowed
}
