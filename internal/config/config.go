package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Directory holding <year>/<month>/<name> sections. Relative values are
	// resolved against the working directory.
	ProjectsRoot string   `mapstructure:"projects_root" yaml:"projects_root"`
	Subdirs      []string `mapstructure:"subdirs" yaml:"subdirs"`
	ReadmeName   string   `mapstructure:"readme_name" yaml:"readme_name"`
	// Look for a relative projects root in parent directories before
	// falling back to the working directory.
	SearchParents bool `mapstructure:"search_parents" yaml:"search_parents"`

	// Diagnostic logging
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Defaults returns the built-in configuration.
func Defaults() *Global {
	return &Global{
		ProjectsRoot: "projects",
		Subdirs:      []string{"r", "python", "static"},
		ReadmeName:   "README.md",
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// DefaultFile returns ~/.tidyweek/config.yaml.
func DefaultFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".tidyweek", "config.yaml"), nil
}

func resolvePath(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return DefaultFile()
}

// Save writes the given configuration to the cfgFile path, or to DefaultFile
// when cfgFile is empty. Missing parent directories are created.
func Save(c *Global, cfgFile string) error {
	path, err := resolvePath(cfgFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file (cfgFile or DefaultFile) > defaults.
// A config file that does not exist yet is not an error.
func Load(cfgFile string) (*Global, error) {
	path, err := resolvePath(cfgFile)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("TIDYWEEK")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("projects_root", d.ProjectsRoot)
	v.SetDefault("subdirs", d.Subdirs)
	v.SetDefault("readme_name", d.ReadmeName)
	v.SetDefault("search_parents", d.SearchParents)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ProjectsRoot == "" {
		c.ProjectsRoot = d.ProjectsRoot
	}
	if len(c.Subdirs) == 0 {
		c.Subdirs = d.Subdirs
	}
	return &c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
