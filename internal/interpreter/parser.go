package interpreter

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Every whitespace-separated run is one Field so that a value such as
// "3x" reaches strconv whole. The grammar only fixes the field count;
// numbers are converted with strconv so that a leading zero never
// switches the base.
var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type PlateauLine struct {
	MaxX string `parser:"@Field"`
	MaxY string `parser:"@Field"`
}

type PositionLine struct {
	X       string  `parser:"@Field"`
	Y       string  `parser:"@Field"`
	Heading string  `parser:"@Field"`
	Power   *string `parser:"@Field?"`
}

var (
	plateauParser = participle.MustBuild[PlateauLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
	positionParser = participle.MustBuild[PositionLine](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
	)
)

// ParsePlateau reads a "<maxX> <maxY>" line.
func ParsePlateau(line string) (Plateau, error) {
	pl, err := plateauParser.ParseString("plateau", line)
	if err != nil {
		return Plateau{}, fmt.Errorf("%w: %q", ErrInvalidPlateauSize, line)
	}
	maxX, errX := strconv.Atoi(pl.MaxX)
	maxY, errY := strconv.Atoi(pl.MaxY)
	if errX != nil || errY != nil {
		return Plateau{}, fmt.Errorf("%w: %q", ErrInvalidPlateauSize, line)
	}
	return NewPlateau(maxX, maxY)
}

// ParsePosition reads "<x> <y> <heading>" and, for powered robots, a
// trailing "<power>". The robot has to start on the plateau.
func (v Variant) ParsePosition(line string, p Plateau) (*Robot, error) {
	pl, err := positionParser.ParseString("position", line)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRobotPosition, line)
	}
	x, errX := strconv.Atoi(pl.X)
	y, errY := strconv.Atoi(pl.Y)
	h, ok := ParseHeading(pl.Heading)
	if errX != nil || errY != nil || !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRobotPosition, line)
	}
	r := NewRobot(x, y, h)
	if v.Powered {
		if pl.Power == nil {
			return nil, fmt.Errorf("%w: missing power in %q", ErrInvalidRobotPosition, line)
		}
		power, err := strconv.Atoi(*pl.Power)
		if err != nil || power <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoPower, *pl.Power)
		}
		r.WithPower(power)
	}
	if !p.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) on %s", ErrOutOfBounds, x, y, p)
	}
	return r, nil
}

// ParseProgram validates an instruction line for the variant.
func (v Variant) ParseProgram(line string) (Program, error) {
	if err := v.ValidateInstructions(line); err != nil {
		return "", err
	}
	return Program(line), nil
}
