package global

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is read from config.json in the config dir, then overridden by KLEFKI_* environment variables.
// Empty paths are filled in relative to the config dir.
type Config struct {
	DataDir          string `json:"data_dir" env:"KLEFKI_DATA_DIR"`
	ScriptDir        string `json:"script_dir" env:"KLEFKI_SCRIPT_DIR"`
	TeamSaveLocation string `json:"team_save_location" env:"KLEFKI_TEAMS"`
	DatabasePath     string `json:"database_path" env:"KLEFKI_DATABASE"`
	LogDir           string `json:"log_dir" env:"KLEFKI_LOG_DIR"`
	PlayerName       string `json:"player_name" env:"KLEFKI_PLAYER"`
	Debug            bool   `json:"debug" env:"KLEFKI_DEBUG"`
	// Zero means a random seed
	Seed uint64 `json:"seed" env:"KLEFKI_SEED"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "klefki")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// LoadConfig reads the config file at configPath. A missing or empty file is created with default values.
func LoadConfig(configPath string) (Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return Config{}, fmt.Errorf("create config dir: %w", err)
	}

	configContents, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var config Config
	if len(configContents) > 0 {
		if err := json.Unmarshal(configContents, &config); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	} else {
		config = populateConfig(configDir, Config{})
		if err := SaveConfig(configPath, config); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return populateConfig(configDir, config), nil
}

func SaveConfig(configPath string, config Config) error {
	jsonString, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, jsonString, 0o666); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func populateConfig(configDir string, config Config) Config {
	if config.PlayerName == "" {
		config.PlayerName = "Player"
	}
	if config.DataDir == "" {
		config.DataDir = filepath.Join(configDir, "data")
	}
	if config.ScriptDir == "" {
		config.ScriptDir = filepath.Join(config.DataDir, "scripts")
	}
	if config.TeamSaveLocation == "" {
		config.TeamSaveLocation = filepath.Join(configDir, "saves", "teams.json")
	}
	if config.DatabasePath == "" {
		config.DatabasePath = filepath.Join(configDir, "saves", "klefki.db")
	}
	if config.LogDir == "" {
		config.LogDir = filepath.Join(configDir, "logs")
	}

	return config
}
