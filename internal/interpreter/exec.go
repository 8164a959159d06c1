package interpreter

import "fmt"

// Command is a single instruction character.
type Command byte

const (
	TurnLeft  Command = 'L'
	TurnRight Command = 'R'
	Forward   Command = 'M'
	Backward  Command = 'B'
)

func (c Command) String() string {
	return string(rune(c))
}

type WarningKind int

const (
	BoundaryViolation WarningKind = iota
	UnknownCommand
	OutOfPower
)

func (k WarningKind) String() string {
	switch k {
	case BoundaryViolation:
		return "boundary violation"
	case UnknownCommand:
		return "unknown command"
	case OutOfPower:
		return "out of power"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning records a command that was skipped or had no effect. X and Y
// hold the rejected target for boundary violations.
type Warning struct {
	Kind    WarningKind
	Index   int
	Command Command
	X, Y    int
}

func (w Warning) String() string {
	switch w.Kind {
	case BoundaryViolation:
		return fmt.Sprintf("robot tried moving out of plateau at (%d, %d), skipping command %d", w.X, w.Y, w.Index)
	case UnknownCommand:
		return fmt.Sprintf("invalid command %q at %d, skipping command", w.Command.String(), w.Index)
	case OutOfPower:
		return fmt.Sprintf("robot is out of power, skipping command %d (%s)", w.Index, w.Command)
	}
	return w.Kind.String()
}

// Outcome is what is left after a program ran.
type Outcome struct {
	Robot Robot
	// Attempted counts commands that were executed, including moves
	// rejected at the plateau edge.
	Attempted int
	Warnings  []Warning
}

func (o Outcome) Result() string {
	return o.Robot.String()
}

// Program is a validated instruction line.
type Program string

type handler func(ctx *Context, i int, cmd Command) *Warning

var dispatch = map[Command]handler{
	TurnLeft:  turn(Heading.Left),
	TurnRight: turn(Heading.Right),
	Forward:   move(1),
	Backward:  move(-1),
}

func turn(rotate func(Heading) Heading) handler {
	return func(ctx *Context, _ int, _ Command) *Warning {
		ctx.Robot.Heading = rotate(ctx.Robot.Heading)
		return nil
	}
}

func move(sign int) handler {
	return func(ctx *Context, i int, cmd Command) *Warning {
		dx, dy := ctx.Robot.Heading.Delta()
		nx, ny := ctx.Robot.X+sign*dx, ctx.Robot.Y+sign*dy
		if !ctx.Plateau.InBounds(nx, ny) {
			return &Warning{Kind: BoundaryViolation, Index: i, Command: cmd, X: nx, Y: ny}
		}
		ctx.Robot.Move(sign*dx, sign*dy)
		return nil
	}
}

// Exec runs the program against ctx.Robot. Every attempted command costs
// one unit of power, whether or not the robot actually moved.
func (p Program) Exec(ctx *Context) Outcome {
	budget := ctx.Robot.Power
	consumed := 0
	var warnings []Warning
	for i := 0; i < len(p); i++ {
		cmd := Command(p[i])
		if ctx.Robot.Limited && consumed >= budget {
			warnings = append(warnings, Warning{Kind: OutOfPower, Index: i, Command: cmd})
			continue
		}
		h, ok := dispatch[cmd]
		if !ok || !ctx.Variant.Allows(cmd) {
			warnings = append(warnings, Warning{Kind: UnknownCommand, Index: i, Command: cmd})
			continue
		}
		if w := h(ctx, i, cmd); w != nil {
			warnings = append(warnings, *w)
		}
		consumed++
	}
	if ctx.Robot.Limited {
		ctx.Robot.Power = budget - consumed
	}
	return Outcome{Robot: *ctx.Robot, Attempted: consumed, Warnings: warnings}
}
