// Package disksim implements the classical disk-head scheduling policies
// (FCFS, SSTF, SCAN, C-SCAN, LOOK) over a simulated disk. Each policy is a
// pure function: given a disk geometry and a queue of cylinder requests it
// returns the service order, the head travel path, and the total movement,
// which stands in for seek time when comparing policies. Inputs are never
// mutated and no state survives a call.
package disksim

import (
	"fmt"
	"sync"
)

// Simulate dispatches to the named algorithm. dir is only consulted by the
// sweep policies; FCFS and SSTF ignore it.
func Simulate(algo Algorithm, cfg DiskConfig, requests []int, dir Direction) (Result, error) {
	switch algo {
	case AlgorithmFCFS:
		return FCFS(cfg, requests)
	case AlgorithmSSTF:
		return SSTF(cfg, requests)
	case AlgorithmSCAN:
		return SCAN(cfg, requests, dir)
	case AlgorithmCSCAN:
		return CSCAN(cfg, requests, dir)
	case AlgorithmLOOK:
		return LOOK(cfg, requests, dir)
	}
	return Result{}, fmt.Errorf("unknown algorithm %d", algo)
}

// RunAll runs every algorithm over the same input for side-by-side
// comparison. Each run only reads its inputs and allocates its own result,
// so the runs execute concurrently; results come back in Algorithms() order.
func RunAll(cfg DiskConfig, requests []int, dir Direction) ([]Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return nil, err
	}
	if err := checkDirection(dir); err != nil {
		return nil, err
	}

	algos := Algorithms()
	results := make([]Result, len(algos))

	var wg sync.WaitGroup
	for i, algo := range algos {
		wg.Add(1)
		go func(i int, algo Algorithm) {
			defer wg.Done()
			// Inputs were validated above, so the individual runs cannot fail.
			results[i], _ = Simulate(algo, cfg, requests, dir)
		}(i, algo)
	}
	wg.Wait()

	return results, nil
}

func checkDirection(dir Direction) error {
	if dir != Up && dir != Down {
		return fmt.Errorf("%w: %d", ErrUnsupportedDirection, dir)
	}
	return nil
}
