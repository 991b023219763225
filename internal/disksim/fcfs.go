package disksim

// FCFS services requests strictly in arrival order.
func FCFS(cfg DiskConfig, requests []int) (Result, error) {
	if err := ValidateInput(cfg, requests); err != nil {
		return Result{}, err
	}
	if len(requests) == 0 {
		return emptyResult(AlgorithmFCFS, cfg), nil
	}

	order := append([]int(nil), requests...)

	path := make([]int, 0, len(order)+1)
	path = append(path, cfg.HeadStart)
	path = append(path, order...)

	return resultFromPath(AlgorithmFCFS, order, path), nil
}
