package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the unified application configuration
type Config struct {
	LogDir      string
	ExportDir   string
	StartSorted bool
	TempoBPM    float64
}

// Settings represents the config file structure
type Settings struct {
	LogDir      string  `yaml:"log_dir,omitempty"`
	ExportDir   string  `yaml:"export_dir,omitempty"`
	StartSorted bool    `yaml:"start_sorted"`
	TempoBPM    float64 `yaml:"tempo_bpm,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	LogDir    string
	ExportDir string
	Sorted    bool
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		ExportDir: ".",
		TempoBPM:  120,
	}

	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.LogDir != "" {
				cfg.LogDir = expandPath(fileConfig.LogDir)
			}
			if fileConfig.ExportDir != "" {
				cfg.ExportDir = expandPath(fileConfig.ExportDir)
			}
			if fileConfig.TempoBPM > 0 {
				cfg.TempoBPM = fileConfig.TempoBPM
			}
			cfg.StartSorted = fileConfig.StartSorted
		}
	}

	// Environment variables override config file
	if v := os.Getenv("FREQNOTE_LOG_DIR"); v != "" {
		cfg.LogDir = expandPath(v)
	}
	if v := os.Getenv("FREQNOTE_EXPORT_DIR"); v != "" {
		cfg.ExportDir = expandPath(v)
	}
	if v := os.Getenv("FREQNOTE_START_SORTED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.StartSorted = b
		}
	}

	// CLI flags override everything
	if flags.LogDir != "" {
		cfg.LogDir = expandPath(flags.LogDir)
	}
	if flags.ExportDir != "" {
		cfg.ExportDir = expandPath(flags.ExportDir)
	}
	if flags.Sorted {
		cfg.StartSorted = true
	}

	return cfg, nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "freqnote", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	settings := Settings{
		ExportDir: ".",
		TempoBPM:  120,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
