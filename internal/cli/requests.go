package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrNoRequests = errors.New("no requests given")

// parseRequestList converts a comma-separated list like "98,183,37" into
// cylinder numbers. Spaces around the commas are fine.
func parseRequestList(s string) ([]int, error) {
	var requests []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad cylinder number %q", part)
		}
		requests = append(requests, n)
	}
	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return requests, nil
}

// loadRequestFile reads cylinder numbers from a CSV file. Rows may hold one
// or several values, so both one-per-line files and a single comma-separated
// line work.
func loadRequestFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open request file: %w", err)
	}
	defer f.Close()

	return readRequests(f)
}

func readRequests(r io.Reader) ([]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may differ in width

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	var requests []int
	for _, row := range rows {
		for _, field := range row {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("bad cylinder number %q", field)
			}
			requests = append(requests, n)
		}
	}
	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return requests, nil
}
