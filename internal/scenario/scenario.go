// Package scenario loads canned request workloads for cross-algorithm
// comparison, either from YAML files or from the built-in set.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sangn12/disksched/internal/disksim"
)

// Scenario is one named workload: a disk, a request queue, and the initial
// sweep direction for the algorithms that need one.
type Scenario struct {
	Name      string             `yaml:"name"`
	Disk      disksim.DiskConfig `yaml:"disk"`
	Direction string             `yaml:"direction"`
	Requests  []int              `yaml:"requests"`
}

// Validate checks the scenario against the engine's preconditions.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if _, err := disksim.ParseDirection(s.Direction); err != nil {
		return err
	}
	if len(s.Requests) == 0 {
		return fmt.Errorf("scenario %q has no requests", s.Name)
	}
	return disksim.ValidateInput(s.Disk, s.Requests)
}

// Dir returns the parsed sweep direction. Validate must have passed.
func (s Scenario) Dir() disksim.Direction {
	d, _ := disksim.ParseDirection(s.Direction)
	return d
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and validates scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%s: no scenarios defined", path)
	}

	for _, s := range f.Scenarios {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}

	return f.Scenarios, nil
}

// Builtin returns the four canonical request patterns used to compare the
// algorithms: random, sorted, reverse-sorted, and clustered.
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:      "random requests",
			Disk:      disksim.DiskConfig{MinCylinder: 0, MaxCylinder: 199, HeadStart: 53},
			Direction: "up",
			Requests:  []int{98, 183, 37, 122, 14, 124, 65, 67},
		},
		{
			Name:      "sorted requests",
			Disk:      disksim.DiskConfig{MinCylinder: 0, MaxCylinder: 199, HeadStart: 50},
			Direction: "up",
			Requests:  []int{10, 20, 30, 40, 60, 70, 80},
		},
		{
			Name:      "reverse sorted requests",
			Disk:      disksim.DiskConfig{MinCylinder: 0, MaxCylinder: 199, HeadStart: 100},
			Direction: "down",
			Requests:  []int{180, 160, 140, 120, 60, 40, 20},
		},
		{
			Name:      "clustered requests",
			Disk:      disksim.DiskConfig{MinCylinder: 0, MaxCylinder: 199, HeadStart: 90},
			Direction: "up",
			Requests:  []int{85, 86, 87, 150, 160, 170},
		},
	}
}
