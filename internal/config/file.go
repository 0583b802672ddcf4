package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pfrenyo/legendary-replace-tool/internal/log"
)

// Config file search paths (in order of precedence within each scope).
var projectConfigFiles = []string{"lrt.yaml", "lrt.yml", ".lrtrc"}

// globalConfigPath returns the global config file path (~/.lrt/config.yaml).
func globalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lrt", "config.yaml")
}

// Load loads and merges lrt configuration from global and project config
// files.
//
// Precedence (later overrides earlier):
//  1. Global config (~/.lrt/config.yaml)
//  2. Project config (lrt.yaml, lrt.yml, .lrtrc in workDir)
//
// CLI flags should be applied on top of the returned config by the caller.
func Load(workDir string) Config {
	globalCfg := loadGlobalConfig()
	projectCfg := loadProjectConfig(workDir)
	return mergeConfigs(globalCfg, projectCfg)
}

// loadProjectConfig finds and loads a working-directory config.
func loadProjectConfig(workDir string) *Config {
	for _, filename := range projectConfigFiles {
		configPath := filepath.Join(workDir, filename)
		cfg := loadConfigFile(configPath)
		if cfg != nil {
			log.Debugf("Loaded project config: %s", configPath)
			return cfg
		}
	}
	return nil
}

// loadGlobalConfig loads the global config file.
func loadGlobalConfig() *Config {
	path := globalConfigPath()
	if path == "" {
		return nil
	}
	cfg := loadConfigFile(path)
	if cfg != nil {
		log.Debugf("Loaded global config: %s", path)
	}
	return cfg
}

// loadConfigFile reads and parses a single config file using yaml.v3.
// Returns nil if the file does not exist or cannot be parsed.
func loadConfigFile(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Debugf("Failed to parse config %s: %v", path, err)
		return nil
	}
	return &cfg
}

// mergeConfigs merges multiple configs with later values taking precedence.
// nil configs are skipped. Ignore lists accumulate rather than override.
func mergeConfigs(configs ...*Config) Config {
	result := Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}

		if cfg.Out != "" {
			result.Out = cfg.Out
		}
		if cfg.Tags != "" {
			result.Tags = cfg.Tags
		}
		if cfg.Source != "" {
			result.Source = cfg.Source
		}
		if len(cfg.Ignore) > 0 {
			result.Ignore = append(result.Ignore, cfg.Ignore...)
		}
		if cfg.Quiet != nil {
			result.Quiet = cfg.Quiet
		}
		if cfg.Verbose != nil {
			result.Verbose = cfg.Verbose
		}
	}

	return result
}
