package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/routeledger/pkg/util"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "routeledger.yaml"
	DefaultPrompt    = ">>> "
	LogFormatConsole = "CONSOLE"
	LogFormatJSON    = "JSON"

	metadataKey = "config"
)

type Config struct {
	Prompt    string `yaml:"prompt"`
	Debug     bool   `yaml:"debug"`
	LogFormat string `yaml:"logformat"`
}

func Default() *Config {
	return &Config{
		Prompt:    DefaultPrompt,
		LogFormat: LogFormatConsole,
	}
}

// Load reads the YAML file at path and then applies the ROUTELEDGER_
// environment on top. A missing file is only an error when required.
func Load(path string, required bool) (*Config, error) {
	config := Default()

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		log.Debug().Str("path", path).Msg("No config file, using defaults")
	} else if err != nil {
		return nil, err
	} else if err := config.parse(content); err != nil {
		return nil, err
	}

	config.ApplyEnvironment(util.GetEnvironmentVariables())

	return config, nil
}

func (c *Config) parse(content []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// ApplyEnvironment overrides settings from variables as returned by
// util.GetEnvironmentVariables.
func (c *Config) ApplyEnvironment(env map[string]string) {
	if env["PROMPT"] != "" {
		c.Prompt = env["PROMPT"]
	}

	if env["DEBUG"] != "" {
		c.Debug = env["DEBUG"] == "YES"
	}

	if env["LOG_FORMAT"] != "" {
		c.LogFormat = env["LOG_FORMAT"]
	}
}

func Store(c *cli.Context, config *Config) {
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}

	c.App.Metadata[metadataKey] = config
}

func FromContext(c *cli.Context) *Config {
	if config, ok := c.App.Metadata[metadataKey].(*Config); ok {
		return config
	}

	return Default()
}
