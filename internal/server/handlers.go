package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/sangn12/disksched/internal/disksim"
)

// simulateRequest is the body shared by /simulate and /compare; /compare
// ignores the algorithm field.
type simulateRequest struct {
	MinCylinder int    `json:"min_cylinder"`
	MaxCylinder int    `json:"max_cylinder"`
	HeadStart   int    `json:"head_start"`
	Requests    []int  `json:"requests"`
	Direction   string `json:"direction"`
	Algorithm   string `json:"algorithm"`
}

func (req simulateRequest) config() disksim.DiskConfig {
	return disksim.DiskConfig{
		MinCylinder: req.MinCylinder,
		MaxCylinder: req.MaxCylinder,
		HeadStart:   req.HeadStart,
	}
}

func decodeSimulateRequest(w http.ResponseWriter, r *http.Request, reqID string) (simulateRequest, bool) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return req, false
	}
	return req, true
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFrom(r.Context())

	req, ok := decodeSimulateRequest(w, r, reqID)
	if !ok {
		return
	}

	algo, err := disksim.ParseAlgorithm(req.Algorithm)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, err.Error())
		return
	}
	dir, err := disksim.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, err.Error())
		return
	}

	result, err := disksim.Simulate(algo, req.config(), req.Requests, dir)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, err.Error())
		return
	}

	respondOK(w, reqID, result)
}

type compareResponse struct {
	Results []disksim.Result `json:"results"`
	Best    string           `json:"best"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	reqID := requestIDFrom(r.Context())

	req, ok := decodeSimulateRequest(w, r, reqID)
	if !ok {
		return
	}

	dir, err := disksim.ParseDirection(req.Direction)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, err.Error())
		return
	}

	results, err := disksim.RunAll(req.config(), req.Requests, dir)
	if err != nil {
		respondError(w, reqID, http.StatusBadRequest, err.Error())
		return
	}

	// Best first: least total movement means least implied seek time.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalMovement < results[j].TotalMovement
	})

	respondOK(w, reqID, compareResponse{
		Results: results,
		Best:    results[0].Algorithm.String(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(disksim.Algorithms()))
	for _, a := range disksim.Algorithms() {
		names = append(names, a.String())
	}
	respondOK(w, requestIDFrom(r.Context()), map[string]any{"algorithms": names})
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, requestIDFrom(r.Context()), healthResponse{
		Status:    "healthy",
		Version:   "0.1.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}
