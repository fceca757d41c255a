package game

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameConfig(t *testing.T) {
	config, err := ParseGameConfig([]byte(`
width: 9
mines: 10
seed: 77
layout: reject
director: constraint
delay: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, 9, config.Width)
	assert.Equal(t, 10, config.NumMines)
	assert.Equal(t, int64(77), config.Seed)
	assert.Equal(t, "reject", config.Layout)
	assert.Equal(t, "constraint", config.DirectorName)
	assert.Equal(t, 250*time.Millisecond, config.DirectorDelay)
	assert.False(t, config.Verbose)
}

func TestParseGameConfigKeepsDefaults(t *testing.T) {
	config, err := ParseGameConfig([]byte("width: 4\n"))
	require.NoError(t, err)

	defaults := NewGameConfig()
	assert.Equal(t, 4, config.Width)
	assert.Equal(t, defaults.NumMines, config.NumMines)
	assert.Equal(t, defaults.Layout, config.Layout)
	assert.Equal(t, defaults.DirectorDelay, config.DirectorDelay)
}

func TestParseGameConfigErrors(t *testing.T) {
	_, err := ParseGameConfig([]byte("layout: spiral\n"))
	assert.True(t, errors.Is(err, ErrUnknownLayout))

	_, err = ParseGameConfig([]byte("height: 4\n"))
	assert.Error(t, err)

	_, err = ParseGameConfig([]byte("width: [\n"))
	assert.Error(t, err)
}

func TestConfigSerializeRoundTrip(t *testing.T) {
	config := NewGameConfig()
	config.Width = 12
	config.NumMines = 20

	parsed, err := ParseGameConfig([]byte(config.Serialize()))
	require.NoError(t, err)
	assert.Equal(t, config, parsed)
}

func TestLoadGameConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "termsweep-config-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "termsweep.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("width: 5\nmines: 3\n"), 0644))

	config, err := LoadGameConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, config.Width)
	assert.Equal(t, 3, config.NumMines)

	_, err = LoadGameConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
