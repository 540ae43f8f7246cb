package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgo(t *testing.T) {
	one, err := parseAlgo("greedy")
	require.NoError(t, err)
	assert.Equal(t, []string{"greedy"}, one)

	all, err := parseAlgo("all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = parseAlgo("bogus")
	assert.ErrorIs(t, err, errUnknownAlgo)
}

func TestRootRunsGreedyOnSmallInstance(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"--algo", "greedy",
		"--Fmin", "3", "--Fmax", "3",
		"--FsizeMin", "2", "--FsizeMax", "10",
		"--k", "3",
		"--seed", "1",
	})

	err := root.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "hit_objective")
	assert.Contains(t, out.String(), "G:")
}

func TestRootRunsWithExplicitTargetSize(t *testing.T) {
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"--algo", "greedy",
		"--G", "2",
		"--Fmin", "3", "--Fmax", "3",
		"--FsizeMin", "2", "--FsizeMax", "10",
		"--k", "3",
		"--seed", "1",
	})

	err := root.Execute()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "G:")
}
