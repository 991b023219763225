package disksim

// SSTF services, at every step, the pending request closest to the current
// head position. Equal distances go to the lower cylinder so runs over the
// same input are deterministic regardless of queue order.
func SSTF(cfg DiskConfig, requests []int) (Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return Result{}, err
	}
	if len(requests) == 0 {
		return emptyResult(AlgorithmSSTF, cfg), nil
	}

	// Copy so the caller's queue is left untouched.
	pending := append([]int(nil), requests...)

	current := cfg.HeadStart
	order := make([]int, 0, len(pending))
	path := make([]int, 0, len(pending)+1)
	path = append(path, current)

	for len(pending) > 0 {
		best := 0
		for i := 1; i < len(pending); i++ {
			di, db := abs(pending[i]-current), abs(pending[best]-current)
			if di < db || (di == db && pending[i] < pending[best]) {
				best = i
			}
		}

		current = pending[best]
		order = append(order, current)
		path = append(path, current)
		pending = append(pending[:best], pending[best+1:]...)
	}

	return resultFromPath(AlgorithmSSTF, order, path), nil
}
