package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoadMergesSourcesInOrder(t *testing.T) {
	t.Setenv(GlobalEnv, "")
	root := t.TempDir()
	global := filepath.Join(t.TempDir(), "global.ignore")
	require.NoError(t, os.WriteFile(global, []byte("# global\n*.log\n\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".chunkignore"), []byte("dist/\r\n!keep.log\r\n"), 0o644))

	m, err := Load(root, ".chunkignore", global, []string{"  secret.json  "}, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"*.log", "dist/", "!keep.log", "secret.json"}, m.Patterns())
	assert.Equal(t, []string{global, filepath.Join(root, ".chunkignore")}, m.Sources())

	assert.True(t, m.MatchesPath("debug.log"))
	assert.True(t, m.MatchesPath("sub/trace.log"))
	assert.False(t, m.MatchesPath("keep.log"))
	assert.True(t, m.MatchesPath("dist/"))
	assert.True(t, m.MatchesPath("dist/app.js"))
	assert.True(t, m.MatchesPath("config/secret.json"))
	assert.False(t, m.MatchesPath("src/app.js"))
}

func TestLoadMissingFilesAreSkipped(t *testing.T) {
	t.Setenv(GlobalEnv, "")
	root := t.TempDir()

	m, err := Load(root, ".chunkignore", filepath.Join(root, "nope"), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, m.Patterns())
	assert.Empty(t, m.Sources())
	assert.False(t, m.MatchesPath("anything.js"))
}

func TestLoadGlobalFromEnvironmentWithHomeExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	require.NoError(t, os.WriteFile(filepath.Join(home, ".chunkignore_global"), []byte("*.map\n"), 0o644))
	t.Setenv(GlobalEnv, "~/.chunkignore_global")

	m, err := Load(t.TempDir(), "", "", nil, nil)
	require.NoError(t, err)

	assert.True(t, m.MatchesPath("app.js.map"))
	assert.Equal(t, []string{filepath.Join(home, ".chunkignore_global")}, m.Sources())
}

func TestNilMatcherMatchesNothing(t *testing.T) {
	var m *Matcher

	assert.False(t, m.MatchesPath("a.js"))
	assert.Nil(t, m.Patterns())
}
