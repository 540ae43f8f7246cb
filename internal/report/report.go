// Package report renders a solver's Pareto front and the instance's
// reproducibility block to a human-readable console report.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lauralsoraluce/setforge/bitset"
	"github.com/lauralsoraluce/setforge/pareto"
)

// ParetoFront writes a tab-aligned table of front to w, one row per
// solution, under the given heading.
func ParetoFront(w io.Writer, heading string, front []pareto.SolMO) {
	fmt.Fprintf(w, "%s (%d solutions)\n", heading, len(front))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "jaccard\tsize_h\tn_ops\texpression")
	for _, s := range front {
		fmt.Fprintf(tw, "%.4f\t%d\t%d\t%s\n", s.Jaccard, s.SizeH, s.NOps, s.Expr.String())
	}
	tw.Flush()
}

// HitObjective writes whether any solution in front achieves a perfect
// (Jaccard == 1.0) match, the reproducibility check used to validate a
// solver against a ground-truth instance.
func HitObjective(w io.Writer, front []pareto.SolMO) {
	hit := false
	for _, s := range front {
		if s.Jaccard == 1.0 {
			hit = true
			break
		}
	}
	fmt.Fprintf(w, "hit_objective: %t\n", hit)
}

// Reproducibility writes G and every F_i as comma-separated element
// indices, so a run can be replayed byte-for-byte from the report.
func Reproducibility(w io.Writer, f []bitset.Set, g bitset.Set) {
	fmt.Fprintf(w, "G: %s\n", indices(g))
	for i, s := range f {
		fmt.Fprintf(w, "F%d: %s\n", i, indices(s))
	}
}

func indices(s bitset.Set) string {
	var idx []string
	for i := 0; i < bitset.Width; i++ {
		if s.Test(i) {
			idx = append(idx, strconv.Itoa(i))
		}
	}
	return strings.Join(idx, ",")
}
