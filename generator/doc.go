// Package generator builds random problem instances used to exercise
// and validate the solvers: a family of base sets F, optionally a
// ground-truth target G obtained by evaluating a randomly built
// expression over F, so a solver's success can be checked by whether
// it rediscovers a perfect (Jaccard == 1.0) match.
//
// What:
//
//   - Config bounds the instance: number of base sets, their sizes.
//   - New samples |F| base sets, each a random subset of the universe.
//   - Target samples a standalone random target set.
//   - GroundTruth builds F plus a target G derived from a randomly
//     constructed expression over F, and returns that expression so
//     callers can check whether a solver's output matches it exactly.
//
// Why:
//
//   - A target sampled independently of F has no reason to be
//     expressible exactly; GroundTruth instead guarantees at least one
//     perfect solution exists, which is what the "hit objective" check
//     in the driver report verifies.
package generator
