package interpreter

import (
	"fmt"
	"io"
)

// Display writes the banner and one result line per outcome.
func Display(w io.Writer, banner string, outcomes []Outcome) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", banner); err != nil {
		return err
	}
	for _, o := range outcomes {
		if _, err := fmt.Fprintln(w, o.Result()); err != nil {
			return err
		}
	}
	return nil
}
