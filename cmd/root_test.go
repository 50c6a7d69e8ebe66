package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	status int
	stdout string
	stderr string
}

func execute(t *testing.T, fs afero.Fs, stdin string, args ...string) result {
	t.Helper()

	var status int
	var stdout, stderr bytes.Buffer
	root := newRootCmd(fs, &status)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	require.NoError(t, executeRoot(root, args))
	return result{status: status, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRoot(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		stdin    string
		expected result
	}{
		{"no-args", []string{}, "", result{0, "Hello world!\n", ""}},
		{"hello", []string{"hello"}, "", result{0, "Hello world!\n", ""}},
		{"exit", []string{"exit", "7"}, "", result{7, "", ""}},
		{"exit-garbage", []string{"exit", "abc"}, "", result{0, "", ""}},
		{"echo", []string{"echo", "a", "b", "c"}, "", result{0, "a b c\n", ""}},
		{"echo-flags", []string{"echo", "--help", "-n"}, "", result{0, "--help -n\n", ""}},
		{"cat", []string{"cat"}, "Hello world!", result{0, "Hello world!", ""}},
		{"cat-dash", []string{"cat", "-", "-"}, "x\x00y", result{0, "x\x00y", ""}},
		{"unknown", []string{"bogus"}, "", result{100, "", "echocat: Unknown sub-command: bogus\n"}},
		{"help-is-unknown", []string{"--help"}, "", result{100, "", "echocat: Unknown sub-command: --help\n"}},
		{"completion-token-is-unknown", []string{"__complete", "x"}, "", result{100, "", "echocat: Unknown sub-command: __complete\n"}},
		{"completion-nodesc-token-is-unknown", []string{"__completeNoDesc", "x"}, "", result{100, "", "echocat: Unknown sub-command: __completeNoDesc\n"}},
		{"completion-command-is-unknown", []string{"completion", "bash"}, "", result{100, "", "echocat: Unknown sub-command: completion\n"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := execute(t, afero.NewMemMapFs(), tc.stdin, tc.args...)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestRoot_fileRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	payload := []byte{0, 1, 2, 0xff, 0, '\n', '\r'}
	require.NoError(t, afero.WriteFile(fs, "/in.bin", payload, 0600))

	actual := execute(t, fs, "", "cat", "/in.bin", "/out.bin")

	assert.Equal(t, result{}, actual)
	out, err := afero.ReadFile(fs, "/out.bin")
	assert.NoError(t, err)
	assert.Equal(t, string(payload), string(out))
}

func TestRoot_osFs(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	actual := execute(t, fs, "written through the OS", "cat", "-", "/out.txt")
	assert.Equal(t, 0, actual.status)

	out, err := afero.ReadFile(fs, "/out.txt")
	assert.NoError(t, err)
	assert.Equal(t, "written through the OS", string(out))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
