package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const binaryYAML = `name: ends-in-1
states: [S0, S1]
alphabet: ["0", "1"]
start: S0
accepting: [S1]
transitions:
  S0: {"0": S0, "1": S1}
  S1: {"0": S0, "1": S1}
`

func seedDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dfa.yaml")
	require.NoError(t, os.WriteFile(path, []byte(binaryYAML), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	resetFlags(rootCmd)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores defaults so flags from one execution do not leak
// into the next; rootCmd is shared by every test.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestCheck(t *testing.T) {
	src := seedDefinition(t)

	out, err := execute(t, "", "check", "-s", src, "", "1", "10", "101", "2")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Result for string '': Rejected",
		"Result for string '1': Accepted",
		"Result for string '10': Rejected",
		"Result for string '101': Accepted",
		"Result for string '2': Rejected",
		"",
	}, "\n"), out)
}

func TestCheck_TraceGoesToCommandOutput(t *testing.T) {
	src := seedDefinition(t)

	out, err := execute(t, "", "check", "-s", src, "--trace", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Q (States): {S0, S1}\n"), out)
	assert.True(t, strings.HasSuffix(out, "Result for string '1': Accepted\n"), out)
}

func TestRun_DefaultCommand(t *testing.T) {
	src := seedDefinition(t)

	out, err := execute(t, "101\n", "-s", src)
	require.NoError(t, err)
	assert.Equal(t, "Result for string '101': Accepted\n", out)
}

func TestValidate(t *testing.T) {
	src := seedDefinition(t)
	out, err := execute(t, "", "validate", "-s", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Definition is valid!")

	broken := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte(strings.Replace(binaryYAML, `  S1: {"0": S0, "1": S1}`, "", 1)), 0644))

	out, err = execute(t, "", "validate", "-s", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "S1")
}

func TestInspect_Trace(t *testing.T) {
	src := seedDefinition(t)

	out, err := execute(t, "", "inspect", "-s", src, "--format", "trace")
	require.NoError(t, err)
	assert.Contains(t, out, "q0 (Start State): S0\n")
	assert.Contains(t, out, "Transition Function (delta): {(S0, 0) -> S0, (S0, 1) -> S1, (S1, 0) -> S0, (S1, 1) -> S1}")
}

func TestPublish_Bolt(t *testing.T) {
	src := seedDefinition(t)
	db := filepath.Join(t.TempDir(), "catalog.db")

	out, err := execute(t, "", "publish", "-s", src, "--to", "bolt://"+db+"#binary")
	require.NoError(t, err)
	assert.Contains(t, out, "Published ends-in-1")

	out, err = execute(t, "", "check", "-s", "bolt://"+db+"#binary", "101")
	require.NoError(t, err)
	assert.Equal(t, "Result for string '101': Accepted\n", out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "dfasim version "))
}
