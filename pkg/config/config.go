package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// Profile is a named conversion: input and output format tokens as accepted
// by codec.ParseFormat, plus optional output grouping.
type Profile struct {
	Name      string `yaml:"name" json:"name"`
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	Separator string `yaml:"separator,omitempty" json:"separator,omitempty"`
	Group     int    `yaml:"group,omitempty" json:"group,omitempty"`
}

type Config struct {
	CurrentProfile  string     `yaml:"current-profile"`
	ProfileOverride string     `yaml:"-"`
	Profiles        []*Profile `yaml:"profiles"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

func (c *Config) HasProfile(name string) bool {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return true
		}
	}
	return false
}

// Profile returns the stored profile with the given name, or nil.
func (c *Config) Profile(name string) *Profile {
	for _, profile := range c.Profiles {
		if profile.Name == name {
			return profile
		}
	}
	return nil
}

func (c *Config) SetCurrentProfile(name string) error {
	if !c.HasProfile(name) {
		return fmt.Errorf("could not find profile with name %v", name)
	}
	oldProfile := c.CurrentProfile
	c.CurrentProfile = name
	if err := c.Write(); err != nil {
		// "Revert" change, either everything is successful or nothing.
		c.CurrentProfile = oldProfile
		return err
	}
	return nil
}

func (c *Config) ActiveProfile() *Profile {
	if c == nil {
		return nil
	}

	toSearch := c.ProfileOverride
	if c.ProfileOverride == "" {
		toSearch = c.CurrentProfile
	}

	if toSearch == "" {
		return nil
	}

	for _, profile := range c.Profiles {
		if profile.Name == toSearch {
			// Return a copy so flag overrides never leak back into the file.
			p := *profile
			return &p
		}
	}
	return nil
}

// Upsert replaces the profile with the same name or appends p. It reports
// whether an existing profile was replaced.
func (c *Config) Upsert(p *Profile) bool {
	for i, profile := range c.Profiles {
		if profile.Name == p.Name {
			c.Profiles[i] = p
			return true
		}
	}
	c.Profiles = append(c.Profiles, p)
	return false
}

// Remove deletes the named profile and clears it as current profile.
func (c *Config) Remove(name string) error {
	pos := -1
	for i, profile := range c.Profiles {
		if profile.Name == name {
			pos = i
			break
		}
	}
	if pos == -1 {
		return fmt.Errorf("profile with name '%v' does not exist", name)
	}
	c.Profiles = append(c.Profiles[:pos], c.Profiles[pos+1:]...)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return nil
}

// Path returns the file this config is read from and written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".bread", "config"), nil
}
