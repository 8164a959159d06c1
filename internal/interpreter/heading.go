package interpreter

import "fmt"

// Heading is a compass direction stored as an index into headings.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headings = [4]byte{'N', 'E', 'S', 'W'}

// unit displacement per heading, same order as headings
var vectors = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// ParseHeading maps "N", "E", "S" or "W" to a Heading.
func ParseHeading(s string) (Heading, bool) {
	if len(s) != 1 {
		return 0, false
	}
	for i, c := range headings {
		if s[0] == c {
			return Heading(i), true
		}
	}
	return 0, false
}

func (h Heading) Left() Heading {
	return (h + 3) % 4
}

func (h Heading) Right() Heading {
	return (h + 1) % 4
}

// Delta returns the unit step taken when moving forward.
func (h Heading) Delta() (dx, dy int) {
	v := vectors[h%4]
	return v[0], v[1]
}

func (h Heading) String() string {
	if h < 0 || h > West {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return string(headings[h])
}
