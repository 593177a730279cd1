package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tw93/dirsweep/internal/ignore"
)

type fixture struct {
	root    string
	config  string
	logFile string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "tree")
	for _, dir := range []string{
		filepath.Join(root, "a", ".git", "objects"),
		filepath.Join(root, "a", "src"),
		filepath.Join(root, "b", "node_modules", "pkg"),
	} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	return fixture{
		root:    root,
		config:  filepath.Join(base, "missing.yaml"),
		logFile: filepath.Join(base, "logs", "dirsweep.log"),
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRootCommandHelp(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "dirsweep")
	assert.Contains(t, out, "ignore pattern")
	assert.Contains(t, out, "--preset-ignores")
	assert.Contains(t, out, "--search-mode")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range NewRootCommand().Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["list"])
	assert.True(t, names["presets"])
}

func TestListCommand(t *testing.T) {
	fx := newFixture(t)

	out, errOut, err := execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile, "--no-color",
		"-r", fx.root, "-i", ".git")
	require.NoError(t, err)

	assert.Equal(t, []string{
		fx.root,
		filepath.Join(fx.root, "a"),
		filepath.Join(fx.root, "a", "src"),
		filepath.Join(fx.root, "b"),
		filepath.Join(fx.root, "b", "node_modules"),
		filepath.Join(fx.root, "b", "node_modules", "pkg"),
	}, lines(out))
	assert.Contains(t, errOut, "Collected 6 directories")
	assert.Contains(t, errOut, "from 1 root(s)")

	logData, err := os.ReadFile(fx.logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "list finished")
}

func TestListPositionalRoots(t *testing.T) {
	fx := newFixture(t)

	out, _, err := execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile,
		"-i", ".git", "-i", "node_modules", filepath.Join(fx.root, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(fx.root, "a"),
		filepath.Join(fx.root, "a", "src"),
	}, lines(out))
}

func TestListPresetIgnores(t *testing.T) {
	fx := newFixture(t)

	out, _, err := execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile,
		"--preset-ignores", "-r", fx.root)
	require.NoError(t, err)

	for _, line := range lines(out) {
		assert.False(t, ignore.ShouldPrune(line, ignore.WithPresets([]string{".git"})), line)
	}
	assert.NotContains(t, out, "node_modules")
	assert.Contains(t, out, filepath.Join(fx.root, "a", "src"))
}

func TestListUnique(t *testing.T) {
	fx := newFixture(t)
	sub := filepath.Join(fx.root, "a")

	out, errOut, err := execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile, "--no-color",
		"-i", ".git", "--unique", sub, sub)
	require.NoError(t, err)
	assert.Equal(t, []string{sub, filepath.Join(sub, "src")}, lines(out))
	assert.Contains(t, errOut, "Skipped 2 duplicate directories")

	out, _, err = execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile,
		"-i", ".git", sub, sub)
	require.NoError(t, err)
	assert.Len(t, lines(out), 4, "overlapping roots repeat without --unique")
}

func TestListUsesConfigFile(t *testing.T) {
	fx := newFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "roots: [" + fx.root + "]\nignore_patterns: [\".git\", node_modules]\nlog_file: " + fx.logFile + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	out, _, err := execute(t, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		fx.root,
		filepath.Join(fx.root, "a"),
		filepath.Join(fx.root, "a", "src"),
		filepath.Join(fx.root, "b"),
	}, lines(out))
}

func TestListNonexistentRoot(t *testing.T) {
	fx := newFixture(t)

	out, errOut, err := execute(t, "list",
		"--config", fx.config, "--log-file", fx.logFile, "--no-color",
		"-r", filepath.Join(fx.root, "missing"))
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Collected 0 directories")
}

func TestListErrors(t *testing.T) {
	fx := newFixture(t)
	badCfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badCfg, []byte("search_mode: regex\n"), 0o644))

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "no roots",
			args:   []string{"list", "--config", fx.config, "--log-file", fx.logFile},
			errMsg: "no roots to crawl",
		},
		{
			name:   "bad config",
			args:   []string{"list", "--config", badCfg, "-r", fx.root},
			errMsg: "failed to load config",
		},
		{
			name:   "bad search mode",
			args:   []string{"list", "--config", fx.config, "--search-mode", "regex", "-r", fx.root},
			errMsg: "unknown search mode",
		},
		{
			name:   "bad log level",
			args:   []string{"list", "--config", fx.config, "--log-level", "loud", "-r", fx.root},
			errMsg: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRootFallsBackToListWithoutTerminal(t *testing.T) {
	orig := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = orig })

	fx := newFixture(t)
	out, _, err := execute(t, "--config", fx.config, "--log-file", fx.logFile, "-i", ".git", filepath.Join(fx.root, "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(fx.root, "a"), filepath.Join(fx.root, "a", "src")}, lines(out))
}

func TestPresetsCommand(t *testing.T) {
	out, _, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Equal(t, ignore.Presets, lines(out))
}
