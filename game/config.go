package game

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Size     int `yaml:"size"`
	NumMines int `yaml:"mines"`

	// Seed for mine placement; zero picks one from the current time
	Seed int64 `yaml:"seed"`

	// Name of the director playing the game, empty for a human player
	Director string `yaml:"director"`

	LogLevel string `yaml:"log_level"`
}

func NewConfig() Config {
	return Config{
		Size:     DefaultSize,
		NumMines: DefaultNumMines,
		LogLevel: "info",
	}
}

// Validate checks the board dimensions without building a board
func (config Config) Validate() error {
	return validateDimensions(config.Size, config.NumMines)
}

// LoadConfig reads a YAML config file on top of base. Keys missing from the
// file keep the values from base.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return base, errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data, base)
}

func ParseConfig(data []byte, base Config) (Config, error) {
	config := base
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return base, errors.Wrap(err, "parsing config")
	}
	return config, nil
}
