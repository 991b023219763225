package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestList(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "98,183,37", want: []int{98, 183, 37}},
		{in: "98, 183 , 37", want: []int{98, 183, 37}},
		{in: "98,,37", want: []int{98, 37}},
		{in: "42", want: []int{42}},
		{in: "", wantErr: true},
		{in: " , ", wantErr: true},
		{in: "98,abc", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseRequestList(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestReadRequests(t *testing.T) {
	got, err := readRequests(strings.NewReader("98,183,37\n122\n14,124\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{98, 183, 37, 122, 14, 124}, got)
}

func TestReadRequestsRejectsGarbage(t *testing.T) {
	_, err := readRequests(strings.NewReader("98,x\n"))
	assert.Error(t, err)

	_, err = readRequests(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRequests)
}

func TestLoadRequestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.csv")
	require.NoError(t, os.WriteFile(path, []byte("98,183,37,122,14,124,65,67\n"), 0o644))

	got, err := loadRequestFile(path)
	require.NoError(t, err)
	assert.Len(t, got, 8)

	_, err = loadRequestFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestGatherRequests(t *testing.T) {
	_, err := gatherRequests("", "")
	assert.ErrorIs(t, err, ErrNoRequests)

	_, err = gatherRequests("1,2", "also.csv")
	assert.Error(t, err)

	got, err := gatherRequests("1,2", "")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestRunCommand(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"run", "--head", "53", "--requests", "98,183,37", "--algorithm", "sstf"})
	require.NoError(t, root.Execute())
}

func TestRunCommandRejectsBadAlgorithm(t *testing.T) {
	root := NewRootCmd()
	root.SetErr(&strings.Builder{})
	root.SetArgs([]string{"run", "--head", "53", "--requests", "98", "--algorithm", "fscan"})
	assert.Error(t, root.Execute())
}

func TestCompareCommandBuiltins(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"compare"})
	require.NoError(t, root.Execute())
}
