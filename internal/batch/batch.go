// Package batch turns input lines into plateau blocks and runs every robot
// in them, one after another.
package batch

import (
	"fmt"
	"strings"

	"rover/internal/interpreter"
)

// Stage is how far a robot got through validation and execution.
type Stage int

const (
	Unparsed Stage = iota
	PositionValidated
	InstructionsValidated
	Executed
	Rejected
)

func (s Stage) String() string {
	switch s {
	case Unparsed:
		return "unparsed"
	case PositionValidated:
		return "position validated"
	case InstructionsValidated:
		return "instructions validated"
	case Executed:
		return "executed"
	case Rejected:
		return "rejected"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Block is one plateau definition: a bounds line followed by
// position/instruction pairs.
type Block struct {
	Index int
	Lines []string
}

type Result struct {
	Block, Robot int
	Outcome      interpreter.Outcome
}

// Rejection records a block or robot that produced no result. Robot is 0
// when the whole block was abandoned. Stage is the last stage reached.
type Rejection struct {
	Block, Robot int
	Stage        Stage
	Err          error
}

func (r Rejection) Error() string {
	if r.Robot == 0 {
		return fmt.Sprintf("block %d: %v", r.Block, r.Err)
	}
	return fmt.Sprintf("block %d robot %d: %v", r.Block, r.Robot, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

type Report struct {
	Results    []Result
	Rejections []Rejection
}

func (r *Report) Outcomes() []interpreter.Outcome {
	out := make([]interpreter.Outcome, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Outcome
	}
	return out
}

// Lines returns the result strings in input order.
func (r *Report) Lines() []string {
	out := make([]string, len(r.Results))
	for i, res := range r.Results {
		out[i] = res.Outcome.Result()
	}
	return out
}

// Split trims the lines and groups them into blocks. Only powered batches
// may hold several plateaus; elsewhere blank lines are just dropped.
func Split(v interpreter.Variant, lines []string) []Block {
	var blocks []Block
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, Block{Index: len(blocks) + 1, Lines: cur})
			cur = nil
		}
	}
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if v.Powered {
				flush()
			}
			continue
		}
		cur = append(cur, l)
	}
	flush()
	return blocks
}

// Check is the structural test run once before any block is parsed.
func Check(v interpreter.Variant, blocks []Block) error {
	n := 0
	for _, b := range blocks {
		n += len(b.Lines)
	}
	if n < 3 {
		return fmt.Errorf("%w: need at least 3 lines, got %d", interpreter.ErrMalformedBatch, n)
	}
	if !v.Powered && n%2 == 0 {
		return fmt.Errorf("%w: expected an odd number of lines, got %d", interpreter.ErrMalformedBatch, n)
	}
	return nil
}
