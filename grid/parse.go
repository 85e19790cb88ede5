package grid

import "fmt"

const (
	runeBlocked  = '#'
	runeWalkable = '.'
	runeTrigger  = 'T'
)

// Parse builds a Grid from ASCII rows, one string per y:
// '#' blocked, '.' walkable, 'T' trigger.
//
//	g, _ := grid.Parse([]string{
//		"..#",
//		".T.",
//	})
func Parse(rows []string) (*Grid, error) {
	h, w, err := dims(len(rows), func(y int) int { return len(rows[y]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{width: w, height: h, cells: make([]Walkability, w*h)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			wk, ok := walkabilityOf(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownRune, row[x], C(x, y))
			}
			g.cells[y*w+x] = wk
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}

	return g
}

func walkabilityOf(b byte) (Walkability, bool) {
	switch b {
	case runeBlocked:
		return Blocked, true
	case runeWalkable:
		return Walkable, true
	case runeTrigger:
		return Trigger, true
	}

	return Blocked, false
}

func runeOf(w Walkability) byte {
	switch w {
	case Walkable:
		return runeWalkable
	case Trigger:
		return runeTrigger
	default:
		return runeBlocked
	}
}
