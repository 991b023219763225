package disksim

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Algorithm tags a simulation result with the policy that produced it.
type Algorithm int

const (
	AlgorithmFCFS Algorithm = iota
	AlgorithmSSTF
	AlgorithmSCAN
	AlgorithmCSCAN
	AlgorithmLOOK
)

// Algorithms returns every supported policy in comparison order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSSTF, AlgorithmSCAN, AlgorithmCSCAN, AlgorithmLOOK}
}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmFCFS:
		return "FCFS"
	case AlgorithmSSTF:
		return "SSTF"
	case AlgorithmSCAN:
		return "SCAN"
	case AlgorithmCSCAN:
		return "C-SCAN"
	case AlgorithmLOOK:
		return "LOOK"
	}
	return "unknown"
}

func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ParseAlgorithm parses an algorithm name (case-insensitive). "C-SCAN" and
// "CSCAN" are both accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FCFS":
		return AlgorithmFCFS, nil
	case "SSTF":
		return AlgorithmSSTF, nil
	case "SCAN":
		return AlgorithmSCAN, nil
	case "C-SCAN", "CSCAN":
		return AlgorithmCSCAN, nil
	case "LOOK":
		return AlgorithmLOOK, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}

// ServiceStep is one leg of head travel between consecutive positions.
type ServiceStep struct {
	From     int `json:"from"`
	To       int `json:"to"`
	Movement int `json:"movement"`
}

// Result is the outcome of running one algorithm over one request queue.
//
// Order holds the serviced cylinders in service order, one per request.
// Path holds every position the head stops at, starting at HeadStart; for the
// sweep policies this includes boundary stops that serve no request, so Path
// may be longer than Order. Steps has one entry per Path leg and
// TotalMovement is exactly the sum of their movements.
type Result struct {
	Algorithm     Algorithm     `json:"algorithm"`
	Order         []int         `json:"order"`
	Path          []int         `json:"path"`
	Steps         []ServiceStep `json:"steps"`
	TotalMovement int           `json:"total_movement"`
}

func resultFromPath(algo Algorithm, order, path []int) Result {
	steps := make([]ServiceStep, 0, len(path))
	total := 0
	for i := 0; i+1 < len(path); i++ {
		m := abs(path[i+1] - path[i])
		steps = append(steps, ServiceStep{From: path[i], To: path[i+1], Movement: m})
		total += m
	}
	return Result{
		Algorithm:     algo,
		Order:         order,
		Path:          path,
		Steps:         steps,
		TotalMovement: total,
	}
}

func emptyResult(algo Algorithm, cfg DiskConfig) Result {
	return Result{
		Algorithm: algo,
		Order:     []int{},
		Path:      []int{cfg.HeadStart},
		Steps:     []ServiceStep{},
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
