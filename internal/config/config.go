package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Project struct {
		Root string `yaml:"root"`
	} `yaml:"project"`
	CodeAnalysis struct {
		SupportedLanguages []string `yaml:"supported_languages"`
		IgnorePatterns     []string `yaml:"ignore_patterns"`
		RegexOnly          bool     `yaml:"regex_only"`
	} `yaml:"code_analysis"`
	AI struct {
		Provider string `yaml:"provider"` // "gemini" or "rule-based"
		Model    string `yaml:"model"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"ai"`
	Patch struct {
		NormalizeClassIndent bool `yaml:"normalize_class_indent"`
	} `yaml:"patch"`
	GitHub struct {
		TokenEnv   string `yaml:"token_env"`
		BaseBranch string `yaml:"base_branch"`
		Push       bool   `yaml:"push"`
	} `yaml:"github"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.Project.Root = "."
	cfg.AI.Provider = "rule-based"
	cfg.GitHub.TokenEnv = "GITHUB_TOKEN"
	cfg.GitHub.BaseBranch = "main"
	return &cfg
}

// LoadConfig reads the YAML config at path, layering .env and
// environment variables on top. A missing file yields the defaults; any
// other read or parse failure is an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// 3. Override with Environment Variables if present
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if apiKey := os.Getenv("DOCUAI_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if provider := os.Getenv("DOCUAI_AI_PROVIDER"); provider != "" {
		cfg.AI.Provider = provider
	}
	if model := os.Getenv("DOCUAI_AI_MODEL"); model != "" {
		cfg.AI.Model = model
	}
	if cfg.Project.Root == "" {
		cfg.Project.Root = "."
	}
	if cfg.GitHub.BaseBranch == "" {
		cfg.GitHub.BaseBranch = "main"
	}
}
