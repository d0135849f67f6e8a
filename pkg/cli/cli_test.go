package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/narytree/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args with the narytree grammar and runs the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var grammar Commands
	parser, err := kong.New(&grammar, kong.Exit(func(int) { t.Fatalf("kong exited on %v", args) }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logger := NewLogger(grammar.LogLevel, grammar.LogFormat, io.Discard)
	err = kctx.Run(&Context{Logger: logger, Out: out})
	return out.String(), err
}

func TestShowSample(t *testing.T) {
	out, err := run(t, "show")
	require.NoError(t, err)
	assert.Equal(t, SampleWorld().String(), out)
}

func TestShowSubtree(t *testing.T) {
	out, err := run(t, "show", "--of", "America")
	require.NoError(t, err)
	assert.Contains(t, out, "Washington DC")
	assert.NotContains(t, out, "Europe")

	_, err = run(t, "show", "--of", "Atlantis")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--value", "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris: level 3, leaf true, children 0\npath: World > Europe > France > Paris\n", out)

	out, err = run(t, "search", "--value", "Atlantis")
	require.NoError(t, err, "A missing value is a normal outcome")
	assert.Equal(t, "Atlantis: not found\n", out)
}

func TestAncestors(t *testing.T) {
	out, err := run(t, "ancestors", "--value", "Paris")
	require.NoError(t, err)
	assert.Equal(t, "France (level 2)\nEurope (level 1)\nWorld (level 0)\n", out)

	out, err = run(t, "ancestors", "--value", "World")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "ancestors", "--value", "Paris", "--find", "Europe")
	require.NoError(t, err)
	assert.Equal(t, "Europe (level 1)\n", out)

	out, err = run(t, "ancestors", "--value", "Paris", "--find", "America")
	require.NoError(t, err)
	assert.Equal(t, "America is not an ancestor of Paris\n", out)
}

func TestDescendants(t *testing.T) {
	out, err := run(t, "descendants", "--of", "America", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "North America (level 2)\nSouth America (level 2)\n", out)

	out, err = run(t, "descendants")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 13)
}

func TestRemove(t *testing.T) {
	out, err := run(t, "remove", "--parent", "Europe", "--child", "France")
	require.NoError(t, err)
	assert.NotContains(t, out, "France")
	assert.NotContains(t, out, "Paris")
	assert.Contains(t, out, "Germany")

	_, err = run(t, "remove", "--parent", "World", "--child", "Paris")
	assert.ErrorIs(t, err, tree.ErrNotFound, "Only immediate children can be removed")
}

// TestExportRoundTrip exports the sample in every format and loads it back.
func TestExportRoundTrip(t *testing.T) {
	for _, format := range []string{"csv", "tsv", "json"} {
		output := filepath.Join(t.TempDir(), "world."+format)

		_, err := run(t, "export", "--format", format, "--output", output)
		require.NoError(t, err, format)

		out, err := run(t, "show", output)
		require.NoError(t, err, format)
		assert.Equal(t, SampleWorld().String(), out, format)
	}
}

func TestExportSubtreeWithCustomKeys(t *testing.T) {
	output := filepath.Join(t.TempDir(), "europe.csv")

	_, err := run(t, "export", "--of", "Europe", "--parent-key", "from", "--child-key", "to", "--output", output)
	require.NoError(t, err)

	out, err := run(t, "search", "--parent-key", "from", "--child-key", "to", "--value", "Paris", output)
	require.NoError(t, err)
	assert.Equal(t, "Paris: level 2, leaf true, children 0\npath: Europe > France > Paris\n", out)
}

func TestExportRejectsClashingKeys(t *testing.T) {
	testCases := [][]string{
		{"--child-key", "level"},
		{"--parent-key", "level"},
		{"--parent-key", "node", "--child-key", "node"},
	}

	for _, keys := range testCases {
		output := filepath.Join(t.TempDir(), "world.json")
		args := append([]string{"export", "--format", "json", "--output", output}, keys...)

		_, err := run(t, args...)
		assert.Error(t, err, keys)
		assert.NoFileExists(t, output, "Nothing should be written when the keys clash")
	}
}
