package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const relativePath = "gobang/config.yaml"

type Config struct {
	BoardSize int           `yaml:"board-size"`
	Depth     int           `yaml:"depth"`
	MoveTime  time.Duration `yaml:"move-time"`
	Threads   int           `yaml:"threads"`
	Eval      string        `yaml:"eval"`
	LogLevel  string        `yaml:"log-level"`
}

func Default() Config {
	return Config{
		BoardSize: 12,
		Depth:     6,
		MoveTime:  1800 * time.Millisecond,
		Threads:   1,
		Eval:      "runlength",
		LogLevel:  "info",
	}
}

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, relativePath)
}

// Load reads path over the defaults. An empty path means the default
// location, where a missing file is not an error.
func Load(path string) (Config, error) {
	var config = Default()
	var optional = path == ""
	if optional {
		var found, err = xdg.SearchConfigFile(relativePath)
		if err != nil {
			return config, nil
		}
		path = found
	}
	var data, err = os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parse config %v: %w", path, err)
	}
	if err = config.Validate(); err != nil {
		return config, fmt.Errorf("config %v: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.BoardSize < 5 {
		return errors.New("board-size must be at least 5")
	}
	if c.Depth < 1 {
		return errors.New("depth must be positive")
	}
	if c.Threads < 1 {
		return errors.New("threads must be positive")
	}
	if c.MoveTime < 0 {
		return errors.New("move-time must not be negative")
	}
	return nil
}
