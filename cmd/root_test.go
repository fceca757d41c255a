package cmd

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := newRootCmd(strings.NewReader(input), &out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	game.Log.SetOutput(ioutil.Discard)
	return out.String(), err
}

func writeConfig(t *testing.T, contents string) (string, func()) {
	t.Helper()

	dir, err := ioutil.TempDir("", "termsweep-cmd-")
	require.NoError(t, err)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
	return path, func() { os.RemoveAll(dir) }
}

func TestRootPlaysWithFlags(t *testing.T) {
	output, err := execute(t, "2\n2\n", "--width", "4", "--mines", "0", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, output, "Congratulations, You Win!")
}

func TestRootPlaysWithDirector(t *testing.T) {
	output, err := execute(t, "", "-w", "3", "-m", "0", "-d", "constraint", "--delay", "0s")
	require.NoError(t, err)
	assert.Contains(t, output, "x: ")
	assert.Contains(t, output, "Congratulations, You Win!")
}

func TestRootRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "", "--layout", "spiral")
	assert.Error(t, err)

	_, err = execute(t, "", "--director", "psychic")
	assert.Error(t, err)

	_, err = execute(t, "", "-w", "2", "-m", "1")
	assert.True(t, errors.Is(err, game.ErrInvalidSize))
}

func TestRootReadsConfigFile(t *testing.T) {
	path, cleanup := writeConfig(t, "width: 3\nmines: 0\ndirector: random\ndelay: 0s\n")
	defer cleanup()

	output, err := execute(t, "", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, output, "  | 0 | 1 | 2\n")
	assert.Contains(t, output, "Congratulations, You Win!")
}

func TestRootFlagsOverrideConfigFile(t *testing.T) {
	path, cleanup := writeConfig(t, "width: 3\nmines: 0\ndirector: random\ndelay: 0s\n")
	defer cleanup()

	output, err := execute(t, "", "--config", path, "--width", "5")
	require.NoError(t, err)
	assert.Contains(t, output, "  | 0 | 1 | 2 | 3 | 4\n")
}

func TestRootBadConfigFile(t *testing.T) {
	path, cleanup := writeConfig(t, "layout: spiral\n")
	defer cleanup()

	_, err := execute(t, "", "--config", path)
	assert.True(t, errors.Is(err, game.ErrUnknownLayout))
}

func TestConfigCommand(t *testing.T) {
	output, err := execute(t, "", "config")
	require.NoError(t, err)

	config, err := game.ParseGameConfig([]byte(output))
	require.NoError(t, err)
	assert.Equal(t, game.NewGameConfig(), config)
}

func TestDirectorByName(t *testing.T) {
	director, err := directorByName("", 1)
	require.NoError(t, err)
	assert.Nil(t, director)

	director, err = directorByName("random", 1)
	require.NoError(t, err)
	assert.IsType(t, &random.Director{}, director)

	director, err = directorByName("constraint", 0)
	require.NoError(t, err)
	assert.IsType(t, &constraint.Director{}, director)

	_, err = directorByName("psychic", 1)
	assert.True(t, errors.Is(err, ErrUnknownDirector))
}

func TestSeededDirectorsSurviveFirstMove(t *testing.T) {
	const numSeeds = 20

	for _, name := range directorNames {
		t.Run(name, func(t *testing.T) {
			hits := 0
			for seed := int64(1); seed <= numSeeds; seed++ {
				board, err := game.NewBoard(9, 10, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)

				director, err := directorByName(name, seed)
				require.NoError(t, err)
				director.Init(board)

				coord, ok := director.Act()
				require.True(t, ok)
				if board.HitMine(coord.X, coord.Y) {
					hits++
				}
			}
			assert.Less(t, hits, numSeeds/2, "first move hit a mine for %d of %d seeds", hits, numSeeds)
		})
	}
}

func TestRootSeededRandomDirector(t *testing.T) {
	const numSeeds = 20

	instantLosses := 0
	for seed := 1; seed <= numSeeds; seed++ {
		output, err := execute(t, "", "-w", "9", "-m", "10", "-d", "random", "--delay", "0s", "--seed", fmt.Sprint(seed))
		require.NoError(t, err)
		if strings.Count(output, "x: ") == 1 && strings.Contains(output, "Game Over") {
			instantLosses++
		}
	}
	assert.Less(t, instantLosses, numSeeds)
}

func TestDirectorSeedDiffersFromGameSeed(t *testing.T) {
	for _, seed := range []int64{1, 42, -7} {
		assert.NotEqual(t, seed, directorSeed(seed))
	}
}
