package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	DefaultColumn = "Note Squirrel & Park Stories"
	DefaultInput  = "data/stories.csv"
	DefaultOutput = "data/word_frequencies.csv"
	DefaultTopN   = 80

	PresetFiltered = "filtered"
	PresetPlain    = "plain"
)

type Config struct {
	Root             string `yaml:"root"`
	Input            string `yaml:"input"`
	Output           string `yaml:"output"`
	Column           string `yaml:"column"`
	FilterStopWords  bool   `yaml:"filter_stop_words"`
	CollapseVariants bool   `yaml:"collapse_variants"`
	TopN             int    `yaml:"top_n"`
	CRLF             bool   `yaml:"crlf"`
	LogLevel         string `yaml:"log_level"`
	Preview          int    `yaml:"preview"`
}

// Default is the filtered pipeline: stop words removed, variants collapsed,
// top 80 words written.
func Default() *Config {
	return &Config{
		Input:            DefaultInput,
		Output:           DefaultOutput,
		Column:           DefaultColumn,
		FilterStopWords:  true,
		CollapseVariants: true,
		TopN:             DefaultTopN,
		CRLF:             true,
		LogLevel:         "warn",
	}
}

// Load reads a yaml config on top of Default. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, c)
	if err != nil {
		return nil, err
	}

	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return c, nil
}

// ApplyPreset sets the pipeline switches for a named preset.
func (c *Config) ApplyPreset(name string) error {
	switch name {
	case PresetFiltered:
		c.FilterStopWords = true
		c.CollapseVariants = true
		c.TopN = DefaultTopN
	case PresetPlain:
		c.FilterStopWords = false
		c.CollapseVariants = false
		c.TopN = 0
	default:
		return fmt.Errorf("unknown preset %q", name)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Column == "" {
		return errors.New("column must not be empty")
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must not be negative, got %d", c.TopN)
	}
	if c.Preview < 0 {
		return fmt.Errorf("preview must not be negative, got %d", c.Preview)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) InputPath() (string, error) {
	return c.resolve(c.Input)
}

func (c *Config) OutputPath() (string, error) {
	return c.resolve(c.Output)
}

func (c *Config) resolve(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}

	root := c.Root
	if root == "" {
		var err error
		root, err = ExecutableRoot()
		if err != nil {
			return "", err
		}
	}

	return filepath.Join(root, p), nil
}

// ExecutableRoot is the parent of the directory holding the running binary.
func ExecutableRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
