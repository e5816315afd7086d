package particles

import (
	"sync"

	"github.com/meghashyamc/curlplanet/geometry"
)

// parallelThreshold is the minimum particle count that is fanned out across workers.
const parallelThreshold = 1024

// advanceResult holds the projection computed for one particle during the parallel phase.
type advanceResult struct {
	segment Segment
	drawn   bool
}

// advanceParallel advects all particles across s.workers goroutines. Each worker owns a
// contiguous chunk and writes only its own result slots. Aging stays with the caller, which
// holds the random source.
func (s *System) advanceParallel(o geometry.Vector) {
	n := len(s.particles)
	chunk := (n + s.workers - 1) / s.workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				seg, drawn := s.advance(&s.particles[i], o)
				s.results[i] = advanceResult{segment: seg, drawn: drawn}
			}
		}(start, end)
	}
	wg.Wait()
}
