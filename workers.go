package md2site

import "runtime"

// Worker count bounds for batch builds.
const (
	// MinWorkers ensures at least one page is converted at a time.
	MinWorkers = 1

	// MaxWorkers caps auto-sizing. Explicit counts are not capped here.
	MaxWorkers = 16
)

// ResolveWorkers determines the number of pages to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs and servers.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS reflects container CPU quotas once automaxprocs has run.
	return min(max(runtime.GOMAXPROCS(0), MinWorkers), MaxWorkers)
}
