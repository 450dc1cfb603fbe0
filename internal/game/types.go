package game

import (
	"strconv"
	"strings"
)

// Color identifies one of the three cube colors.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// displayOrder is the order colors are written in when formatting a CubeSet.
var displayOrder = []Color{Blue, Green, Red}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// CubeSet holds a count per color. It describes either a single draw or a
// bag capacity.
type CubeSet struct {
	Red   uint64 `json:"red" yaml:"red"`
	Green uint64 `json:"green" yaml:"green"`
	Blue  uint64 `json:"blue" yaml:"blue"`
}

// Count returns the number of cubes of the given color.
func (s CubeSet) Count(c Color) uint64 {
	switch c {
	case Red:
		return s.Red
	case Green:
		return s.Green
	case Blue:
		return s.Blue
	}
	return 0
}

// With returns a copy of s with the count for c replaced.
func (s CubeSet) With(c Color, n uint64) CubeSet {
	switch c {
	case Red:
		s.Red = n
	case Green:
		s.Green = n
	case Blue:
		s.Blue = n
	}
	return s
}

// Within reports whether every count in s is at most the matching count in limit.
func (s CubeSet) Within(limit CubeSet) bool {
	return s.Red <= limit.Red && s.Green <= limit.Green && s.Blue <= limit.Blue
}

// IsZero reports whether no cubes of any color are present.
func (s CubeSet) IsZero() bool {
	return s == CubeSet{}
}

// String formats the non-zero counts, blue first, e.g. "3 blue, 4 red".
func (s CubeSet) String() string {
	parts := make([]string, 0, len(displayOrder))
	for _, c := range displayOrder {
		if n := s.Count(c); n > 0 {
			parts = append(parts, strconv.FormatUint(n, 10)+" "+c.String())
		}
	}
	return strings.Join(parts, ", ")
}

// Game is one input record: an identifier and the draws made during it.
type Game struct {
	ID   uint64
	Sets []CubeSet
}

// String serializes the Game into its canonical line representation.
func (g Game) String() string {
	var sb strings.Builder
	sb.WriteString("Game ")
	sb.WriteString(strconv.FormatUint(g.ID, 10))
	sb.WriteString(": ")
	for i, set := range g.Sets {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(set.String())
	}
	return sb.String()
}
