// Package randexpr builds random set-algebra expressions over a pool
// of base sets. It is shared by the ground-truth generator and both
// evolutionary solvers (nsga2, spea2), which each need to construct a
// random expression respecting an operator-count ceiling.
package randexpr
