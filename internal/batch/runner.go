package batch

import (
	"context"
	"fmt"
	"log/slog"

	"rover/internal/interpreter"
)

type Runner struct {
	Variant interpreter.Variant
	Logger  *slog.Logger
}

func NewRunner(v interpreter.Variant, logger *slog.Logger) *Runner {
	return &Runner{Variant: v, Logger: logger}
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// Run processes every block in order. Only the structural check and a
// cancelled ctx return an error; failing blocks and robots are logged and
// recorded in the report.
func (r *Runner) Run(ctx context.Context, lines []string) (*Report, error) {
	blocks := Split(r.Variant, lines)
	if err := Check(r.Variant, blocks); err != nil {
		r.logger().Error("batch rejected", "err", err)
		return &Report{}, err
	}
	rep := &Report{}
	for _, b := range blocks {
		if err := r.runBlock(ctx, b, rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (r *Runner) runBlock(ctx context.Context, b Block, rep *Report) error {
	log := r.logger().With("block", b.Index)
	plateau, err := interpreter.ParsePlateau(b.Lines[0])
	if err == nil {
		if n := len(b.Lines) - 1; n == 0 || n%2 != 0 {
			err = fmt.Errorf("%w: block has %d robot lines", interpreter.ErrMalformedBatch, n)
		}
	}
	if err != nil {
		log.Error("plateau skipped", "err", err)
		rep.Rejections = append(rep.Rejections, Rejection{Block: b.Index, Stage: Rejected, Err: err})
		return nil
	}
	log.Debug("plateau", "size", plateau.String(), "robots", (len(b.Lines)-1)/2)

	for i := 1; i < len(b.Lines); i += 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		robot := (i + 1) / 2
		out, stage, err := r.runRobot(plateau, b.Lines[i], b.Lines[i+1])
		rlog := log.With("robot", robot)
		if err != nil {
			rlog.Error("robot skipped", "stage", stage.String(), "err", err)
			rep.Rejections = append(rep.Rejections, Rejection{Block: b.Index, Robot: robot, Stage: stage, Err: err})
			continue
		}
		for _, w := range out.Warnings {
			attrs := []any{"kind", w.Kind.String(), "command", w.Command.String(), "index", w.Index}
			if w.Kind == interpreter.BoundaryViolation {
				attrs = append(attrs, "x", w.X, "y", w.Y)
			}
			rlog.Warn(w.String(), attrs...)
		}
		rep.Results = append(rep.Results, Result{Block: b.Index, Robot: robot, Outcome: out})
	}
	return nil
}

// runRobot walks one pair through
// Unparsed -> PositionValidated -> InstructionsValidated -> Executed.
func (r *Runner) runRobot(p interpreter.Plateau, position, instructions string) (interpreter.Outcome, Stage, error) {
	robot, err := r.Variant.ParsePosition(position, p)
	if err != nil {
		return interpreter.Outcome{}, Unparsed, err
	}
	prog, err := r.Variant.ParseProgram(instructions)
	if err != nil {
		return interpreter.Outcome{}, PositionValidated, err
	}
	out := prog.Exec(interpreter.NewContext(p, robot, r.Variant))
	return out, Executed, nil
}
