package interpreter

// Context stores the plateau, the robot and the rules in force

type Context struct {
	Plateau Plateau
	Robot   *Robot
	Variant Variant
}

func NewContext(p Plateau, r *Robot, v Variant) *Context {
	return &Context{Plateau: p, Robot: r, Variant: v}
}
