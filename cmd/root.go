package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/director/random"
	"github.com/they4kman/termsweep/game"
)

var ErrUnknownDirector = errors.New("unknown director")

var rootCmd = newRootCmd(os.Stdin, os.Stdout)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	flagConfig := game.NewGameConfig()
	configPath := ""

	rootCmd := &cobra.Command{
		Use:   "termsweep",
		Short: "Play Minesweeper in the terminal",
		Long: `termsweep is a terminal Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to be asked for the board width and mine count
	termsweep

Pick the board up front
	termsweep -w 9 -m 10

Use the director flag to make the computer play for you
	termsweep -w 9 -m 10 -d constraint
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd.Flags(), configPath, flagConfig)
			if err != nil {
				return err
			}

			setupLogging(config.Verbose)

			// Read the clock once so the board and the director share one game seed
			if config.Seed == 0 {
				config.Seed = time.Now().UnixNano()
			}

			if config.Director, err = directorByName(config.DirectorName, config.Seed); err != nil {
				return err
			}

			_, err = game.Run(config, in, out)
			return err
		},
	}

	rootCmd.SetOut(out)

	flags := rootCmd.Flags()
	flags.IntVarP(&flagConfig.Width, "width", "w", flagConfig.Width, "Width of the square game board, in cells (0 asks)")
	flags.IntVarP(&flagConfig.NumMines, "mines", "m", flagConfig.NumMines, "Number of mines to place in the game board (negative asks)")
	flags.Int64VarP(&flagConfig.Seed, "seed", "s", 0, "Seed for mine placement (0 picks one from the clock)")
	flags.Var(newLayoutValue(flagConfig.Layout, &flagConfig.Layout), "layout", `Mine layout strategy.
shuffle: shuffle every cell and mine the first ones
reject: draw random cells, retrying those already mined`)
	flags.VarP(newDirectorValue("", &flagConfig.DirectorName), "director", "d", `Make the computer play.
random: reveal cells in random order
constraint: reveal cells proven safe, guessing only when stuck`)
	flags.DurationVar(&flagConfig.DirectorDelay, "delay", flagConfig.DirectorDelay, "Pause between computer moves")
	flags.BoolVarP(&flagConfig.Verbose, "verbose", "v", false, "Log debug information to stderr")
	flags.StringVarP(&configPath, "config", "c", "", "YAML file to read settings from; flags take precedence")

	rootCmd.AddCommand(newConfigCmd(out))

	return rootCmd
}

func newConfigCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a starter YAML config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(out, game.NewGameConfig().Serialize())
		},
	}
}

// resolveConfig reads the config file, if any, then applies every flag given on
// the command line on top of it
func resolveConfig(flags *pflag.FlagSet, configPath string, flagConfig game.GameConfig) (game.GameConfig, error) {
	if configPath == "" {
		return flagConfig, nil
	}

	config, err := game.LoadGameConfig(configPath)
	if err != nil {
		game.Log.WithError(err).WithField("path", configPath).Error("invalid config file")
		return config, err
	}

	if flags.Changed("width") {
		config.Width = flagConfig.Width
	}
	if flags.Changed("mines") {
		config.NumMines = flagConfig.NumMines
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("layout") {
		config.Layout = flagConfig.Layout
	}
	if flags.Changed("director") {
		config.DirectorName = flagConfig.DirectorName
	}
	if flags.Changed("delay") {
		config.DirectorDelay = flagConfig.DirectorDelay
	}
	if flags.Changed("verbose") {
		config.Verbose = flagConfig.Verbose
	}

	return config, nil
}

func setupLogging(verbose bool) {
	game.Log.SetOutput(os.Stderr)
	game.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: !verbose,
	})

	if verbose {
		game.Log.SetLevel(logrus.DebugLevel)
	} else {
		game.Log.SetLevel(logrus.WarnLevel)
	}
}

var directorNames = []string{"random", "constraint"}

// Mixed into the game seed so a director never replays the mine layout's shuffle
const directorSeedMask = 0x5DEECE66D

func directorSeed(seed int64) int64 {
	return seed ^ directorSeedMask
}

func directorByName(name string, seed int64) (game.Director, error) {
	rng := rand.New(rand.NewSource(directorSeed(seed)))

	switch name {
	case "":
		return nil, nil
	case "random":
		return random.New(rng), nil
	case "constraint":
		return constraint.New(rng), nil
	default:
		return nil, errors.Wrapf(ErrUnknownDirector, "%q", name)
	}
}

type layoutValue string

func newLayoutValue(val string, p *string) *layoutValue {
	*p = val
	return (*layoutValue)(p)
}

func (layoutVal *layoutValue) String() string {
	return string(*layoutVal)
}

func (layoutVal *layoutValue) Set(value string) error {
	if _, err := game.LayoutByName(value); err != nil {
		return fmt.Errorf("invalid layout, expected one of: %s", strings.Join(game.LayoutNames(), ", "))
	}
	*layoutVal = layoutValue(value)
	return nil
}

func (layoutVal *layoutValue) Type() string {
	return "layout"
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (directorVal *directorValue) String() string {
	return string(*directorVal)
}

func (directorVal *directorValue) Set(value string) error {
	for _, name := range directorNames {
		if name == value {
			*directorVal = directorValue(value)
			return nil
		}
	}
	return fmt.Errorf("invalid director, expected one of: %s", strings.Join(directorNames, ", "))
}

func (directorVal *directorValue) Type() string {
	return "director"
}
