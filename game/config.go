package game

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ParseGameConfig reads YAML on top of the defaults from NewGameConfig
func ParseGameConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, err
	}
	if _, err := LayoutByName(config.Layout); err != nil {
		return config, err
	}
	return config, nil
}

func LoadGameConfig(path string) (GameConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return NewGameConfig(), errors.Wrap(err, "reading config")
	}

	config, err := ParseGameConfig(in)
	if err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

// Serialize renders the config as YAML, for writing a starter config file
func (config GameConfig) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}

	return string(out)
}
