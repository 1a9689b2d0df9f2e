package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minesweep/director"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/ui/window"
)

var (
	flagConfig = game.NewConfig()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play Minesweeper on a square board",
	Long: `minesweep is a Minesweeper game played with the mouse: left click
reveals a cell, right click flags it.

Run with no arguments to play manually on a 10x10 board with 20 mines
	minesweep

Use the director flag to make the computer play for you
	minesweep --director constraint
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		gameDirector, err := director.New(config.Director, nil)
		if err != nil {
			return err
		}

		pixelgl.Run(func() {
			err = window.Run(config, gameDirector)
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	for _, valid := range director.Names() {
		if name == valid {
			*value = directorValue(name)
			return nil
		}
	}
	return fmt.Errorf("invalid director, expected one of: %s", strings.Join(director.Names(), ", "))
}

func (value *directorValue) Type() string {
	return "director"
}

// resolveConfig layers the config file, if any, under the flags that were
// set explicitly on the command line
func resolveConfig(cmd *cobra.Command) (game.Config, error) {
	config := game.NewConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath, config); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		config.Size = flagConfig.Size
	}
	if flags.Changed("mines") {
		config.NumMines = flagConfig.NumMines
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("director") {
		config.Director = flagConfig.Director
	}
	if flags.Changed("log-level") {
		config.LogLevel = flagConfig.LogLevel
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return config, errors.Wrap(err, "log level")
	}
	game.Log.SetLevel(level)

	return config, config.Validate()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML file with size, mines, seed, director and log_level keys")
	flags.IntVarP(&flagConfig.Size, "size", "s", game.DefaultSize, "Width and height of the board, in cells")
	flags.IntVarP(&flagConfig.NumMines, "mines", "m", game.DefaultNumMines, "Number of mines to place in the board")
	flags.Int64Var(&flagConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the current time)")
	flags.VarP(newDirectorValue(director.None, &flagConfig.Director), "director", "d",
		"Computer player: "+strings.Join(director.Names(), ", "))
	flags.StringVar(&flagConfig.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}
