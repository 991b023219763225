package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(logger)
}

// envelope decodes the standard response envelope with raw data.
type envelope struct {
	Status    string          `json:"status"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
}

func do(t *testing.T, srv *Server, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func TestHealth(t *testing.T) {
	w, env := do(t, testServer(), "GET", "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", env.Status)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))

	var data struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "healthy", data.Status)
}

func TestAlgorithms(t *testing.T) {
	w, env := do(t, testServer(), "GET", "/api/v1/algorithms", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Algorithms []string `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"FCFS", "SSTF", "SCAN", "C-SCAN", "LOOK"}, data.Algorithms)
}

func TestSimulate(t *testing.T) {
	body := `{
		"min_cylinder": 0, "max_cylinder": 199, "head_start": 53,
		"requests": [98, 183, 37, 122, 14, 124, 65, 67],
		"direction": "up", "algorithm": "sstf"
	}`
	w, env := do(t, testServer(), "POST", "/api/v1/simulate", body)

	require.Equal(t, http.StatusOK, w.Code, env.Error)

	var data struct {
		Algorithm     string `json:"algorithm"`
		Order         []int  `json:"order"`
		TotalMovement int    `json:"total_movement"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "SSTF", data.Algorithm)
	assert.Equal(t, []int{65, 67, 37, 14, 98, 122, 124, 183}, data.Order)
	assert.Equal(t, 236, data.TotalMovement)
}

func TestSimulateBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "min above max",
			body: `{"min_cylinder": 199, "max_cylinder": 0, "head_start": 53, "requests": [10], "algorithm": "fcfs"}`,
			want: "invalid disk config",
		},
		{
			name: "request off disk",
			body: `{"min_cylinder": 0, "max_cylinder": 199, "head_start": 53, "requests": [500], "algorithm": "fcfs"}`,
			want: "invalid request",
		},
		{
			name: "unknown algorithm",
			body: `{"min_cylinder": 0, "max_cylinder": 199, "head_start": 53, "requests": [10], "algorithm": "fscan"}`,
			want: "unknown algorithm",
		},
		{
			name: "bad direction",
			body: `{"min_cylinder": 0, "max_cylinder": 199, "head_start": 53, "requests": [10], "algorithm": "scan", "direction": "left"}`,
			want: "unsupported direction",
		},
		{
			name: "not json",
			body: `{{{`,
			want: "invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, testServer(), "POST", "/api/v1/simulate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "error", env.Status)
			assert.Contains(t, env.Error, tt.want)
		})
	}
}

func TestCompare(t *testing.T) {
	body := `{
		"min_cylinder": 0, "max_cylinder": 199, "head_start": 53,
		"requests": [98, 183, 37, 122, 14, 124, 65, 67],
		"direction": "up"
	}`
	w, env := do(t, testServer(), "POST", "/api/v1/compare", body)

	require.Equal(t, http.StatusOK, w.Code, env.Error)

	var data struct {
		Best    string `json:"best"`
		Results []struct {
			Algorithm     string `json:"algorithm"`
			TotalMovement int    `json:"total_movement"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	require.Len(t, data.Results, 5)
	assert.Equal(t, "SSTF", data.Best)
	for i := 1; i < len(data.Results); i++ {
		assert.GreaterOrEqual(t, data.Results[i].TotalMovement, data.Results[i-1].TotalMovement)
	}
}

func TestCompareInvalidConfig(t *testing.T) {
	body := `{"min_cylinder": 5, "max_cylinder": 5, "head_start": 5, "requests": [5]}`
	w, env := do(t, testServer(), "POST", "/api/v1/compare", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "invalid disk config")
}
