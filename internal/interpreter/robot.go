package interpreter

import "fmt"

// Robot represents robot position and heading on a plateau

type Robot struct {
	X, Y    int
	Heading Heading
	// Limited robots carry a budget in Power. Before execution it is the
	// whole budget, after it what is left.
	Limited bool
	Power   int
}

func NewRobot(x, y int, h Heading) *Robot {
	return &Robot{X: x, Y: y, Heading: h}
}

// WithPower gives the robot a finite budget.
func (r *Robot) WithPower(power int) *Robot {
	r.Limited = true
	r.Power = power
	return r
}

func (r *Robot) Move(dx, dy int) {
	r.X += dx
	r.Y += dy
}

func (r *Robot) Position() (int, int) {
	return r.X, r.Y
}

func (r *Robot) String() string {
	if r.Limited {
		return fmt.Sprintf("%d %d %s %d", r.X, r.Y, r.Heading, r.Power)
	}
	return fmt.Sprintf("%d %d %s", r.X, r.Y, r.Heading)
}
