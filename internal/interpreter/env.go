package interpreter

import (
	"fmt"

	"rover/internal/lexer"
)

// Variant holds the rules a batch is simulated under

type Variant struct {
	Name string
	// Powered robots carry a budget on their position line, may move
	// backward, and plateaus may be separated by blank lines.
	Powered bool
}

var (
	Base    = Variant{Name: "base"}
	Powered = Variant{Name: "power", Powered: true}
)

func VariantByName(name string) (Variant, error) {
	switch name {
	case Base.Name:
		return Base, nil
	case Powered.Name:
		return Powered, nil
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}

// Allows reports whether cmd belongs to the variant's alphabet.
func (v Variant) Allows(cmd Command) bool {
	switch cmd {
	case TurnLeft, TurnRight, Forward:
		return true
	case Backward:
		return v.Powered
	}
	return false
}

// ValidateInstructions checks the alphabet only; nothing is simulated.
func (v Variant) ValidateInstructions(s string) error {
	toks, err := lexer.Scan(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidInstructions, s)
	}
	for _, tok := range toks {
		if !v.Allows(Command(tok.Literal[0])) {
			return fmt.Errorf("%w: %q not allowed at %d", ErrInvalidInstructions, tok.Literal, tok.Offset)
		}
	}
	return nil
}

func (v Variant) String() string {
	return v.Name
}
