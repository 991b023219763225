package disksim

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfig        = errors.New("invalid disk config")
	ErrInvalidRequest       = errors.New("invalid request")
	ErrUnsupportedDirection = errors.New("unsupported direction")
)

// DiskConfig describes the simulated disk geometry and the initial position
// of the read/write head. It is read-only once handed to the engine.
type DiskConfig struct {
	MinCylinder int `json:"min_cylinder" yaml:"min"`
	MaxCylinder int `json:"max_cylinder" yaml:"max"`
	HeadStart   int `json:"head_start" yaml:"head"`
}

// Validate checks the geometry invariants: min below max, head on the disk.
func (c DiskConfig) Validate() error {
	if c.MinCylinder >= c.MaxCylinder {
		return fmt.Errorf("%w: min cylinder %d must be below max cylinder %d",
			ErrInvalidConfig, c.MinCylinder, c.MaxCylinder)
	}
	if c.HeadStart < c.MinCylinder || c.HeadStart > c.MaxCylinder {
		return fmt.Errorf("%w: head start %d outside disk range %d-%d",
			ErrInvalidConfig, c.HeadStart, c.MinCylinder, c.MaxCylinder)
	}
	return nil
}

func (c DiskConfig) validateRequests(requests []int) error {
	for _, r := range requests {
		if r < c.MinCylinder || r > c.MaxCylinder {
			return fmt.Errorf("%w: cylinder %d outside disk range %d-%d",
				ErrInvalidRequest, r, c.MinCylinder, c.MaxCylinder)
		}
	}
	return nil
}

// ValidateInput checks a config and request queue together; every algorithm
// runs it before computing anything.
func ValidateInput(cfg DiskConfig, requests []int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return cfg.validateRequests(requests)
}

// Direction is the initial sweep direction for SCAN, C-SCAN and LOOK.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// ParseDirection parses "up" or "down" (case-insensitive). The empty string
// defaults to Up.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Up, fmt.Errorf("%w: %q (want up or down)", ErrUnsupportedDirection, s)
}
