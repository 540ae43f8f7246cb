package pareto

import "sort"

// Front returns the non-dominated subset of v, stably sorted by
// Jaccard descending, then SizeH ascending, then NOps ascending.
func Front(v []SolMO) []SolMO {
	out := make([]SolMO, 0, len(v))
	for i := range v {
		dominated := false
		for j := range v {
			if i == j {
				continue
			}
			if Dominates(v[j], v[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, v[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Jaccard != out[j].Jaccard {
			return out[i].Jaccard > out[j].Jaccard
		}
		if out[i].SizeH != out[j].SizeH {
			return out[i].SizeH < out[j].SizeH
		}
		return out[i].NOps < out[j].NOps
	})
	return out
}
