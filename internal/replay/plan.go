package replay

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// PrintPlan lists the instruction sequence without executing it, one
// numbered row per instruction.
func PrintPlan(w io.Writer, plan []Instruction) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, in := range plan {
		switch in.Kind {
		case Commit:
			fmt.Fprintf(tw, "%d\t%s\t%s <%s>\t%q\n", i+1, in.Kind, in.Author, in.Email, in.Message)
		default:
			fmt.Fprintf(tw, "%d\t%s\t%s\t\n", i+1, in.Kind, in.Path)
		}
	}
	tw.Flush()
}
