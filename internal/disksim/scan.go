package disksim

import "sort"

// SCAN (the elevator algorithm) sweeps in one direction servicing every
// request it passes, runs all the way to the disk edge even when no request
// sits there, then reverses and services the rest.
func SCAN(cfg DiskConfig, requests []int, dir Direction) (Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return Result{}, err
	}
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}
	if len(requests) == 0 {
		return emptyResult(AlgorithmSCAN, cfg), nil
	}

	below, above := splitSorted(requests, cfg.HeadStart)

	order := make([]int, 0, len(requests))
	path := make([]int, 0, len(requests)+2)
	path = append(path, cfg.HeadStart)

	if dir == Up {
		order = append(order, above...)
		order = append(order, reversed(below)...)

		path = append(path, above...)
		path = appendEdge(path, cfg.MaxCylinder)
		path = append(path, reversed(below)...)
	} else {
		order = append(order, reversed(below)...)
		order = append(order, above...)

		path = append(path, reversed(below)...)
		path = appendEdge(path, cfg.MinCylinder)
		path = append(path, above...)
	}

	return resultFromPath(AlgorithmSCAN, order, path), nil
}

// CSCAN sweeps like SCAN but never reverses: at the edge it jumps straight to
// the opposite edge and keeps sweeping in the original direction. The jump
// serves no request but is ordinary head travel, so it counts toward
// TotalMovement.
func CSCAN(cfg DiskConfig, requests []int, dir Direction) (Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return Result{}, err
	}
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}
	if len(requests) == 0 {
		return emptyResult(AlgorithmCSCAN, cfg), nil
	}

	below, above := splitSorted(requests, cfg.HeadStart)

	order := make([]int, 0, len(requests))
	path := make([]int, 0, len(requests)+3)
	path = append(path, cfg.HeadStart)

	if dir == Up {
		order = append(order, above...)
		order = append(order, below...)

		path = append(path, above...)
		path = appendEdge(path, cfg.MaxCylinder)
		path = append(path, cfg.MinCylinder)
		path = append(path, below...)
	} else {
		order = append(order, reversed(below)...)
		order = append(order, reversed(above)...)

		path = append(path, reversed(below)...)
		path = appendEdge(path, cfg.MinCylinder)
		path = append(path, cfg.MaxCylinder)
		path = append(path, reversed(above)...)
	}

	return resultFromPath(AlgorithmCSCAN, order, path), nil
}

// LOOK sweeps like SCAN but reverses at the farthest pending request instead
// of traveling on to the disk edge.
func LOOK(cfg DiskConfig, requests []int, dir Direction) (Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return Result{}, err
	}
	if err := checkDirection(dir); err != nil {
		return Result{}, err
	}
	if len(requests) == 0 {
		return emptyResult(AlgorithmLOOK, cfg), nil
	}

	below, above := splitSorted(requests, cfg.HeadStart)

	order := make([]int, 0, len(requests))
	if dir == Up {
		order = append(order, above...)
		order = append(order, reversed(below)...)
	} else {
		order = append(order, reversed(below)...)
		order = append(order, above...)
	}

	path := make([]int, 0, len(order)+1)
	path = append(path, cfg.HeadStart)
	path = append(path, order...)

	return resultFromPath(AlgorithmLOOK, order, path), nil
}

// splitSorted partitions requests around the head position: cylinders below
// the head and cylinders at or above it, each sorted ascending. Duplicates
// are kept; a request equal to the head lands on the "above" side, so an Up
// sweep services it immediately with zero movement.
func splitSorted(requests []int, head int) (below, above []int) {
	for _, r := range requests {
		if r < head {
			below = append(below, r)
		} else {
			above = append(above, r)
		}
	}
	sort.Ints(below)
	sort.Ints(above)
	return below, above
}

func reversed(s []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// appendEdge extends the path to the disk edge unless the sweep already
// ended there (a request on the boundary).
func appendEdge(path []int, edge int) []int {
	if path[len(path)-1] != edge {
		path = append(path, edge)
	}
	return path
}
