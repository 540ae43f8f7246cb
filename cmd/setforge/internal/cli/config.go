package cli

// config collects every flag value for a single invocation.
type config struct {
	// g is the minimum size of a standalone random target G (--G,
	// per spec.md §6). Negative means "unset": a ground-truth target
	// with a guaranteed perfect match is generated instead.
	g        int
	fMin     int
	fMax     int
	fSizeMin int
	fSizeMax int
	k        int
	seed     int64

	popSize        int
	mutationProb   float64
	crossoverProb  float64
	tournamentSize int
	maxGenerations int
	timeLimit      float64

	algo        string
	metricsAddr string
}
