package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config interface {
	EnvConfig
	APIConfig
	LogConfig
}

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

// File is the YAML configuration file. Environment variables override every value.
type File struct {
	API APISection `yaml:"api"`
	Log LogSection `yaml:"log"`
}

type APISection struct {
	BaseURL      string      `yaml:"baseUrl"`
	APIVersion   string      `yaml:"apiVersion"`
	ServiceOwner Credentials `yaml:"serviceOwner"`
	Service      Credentials `yaml:"service"`
	Timeout      string      `yaml:"timeout"`
}

// Credentials hold either an API key and secret or an access token.
type Credentials struct {
	APIKey      string `yaml:"apiKey"`
	APISecret   string `yaml:"apiSecret"`
	AccessToken string `yaml:"accessToken"`
}

type LogSection struct {
	Level string `yaml:"level"`
}

type mainConfig struct {
	EnvVars
	API
	Log
}

// New returns a configuration read from the environment only.
func New() Config {
	return mainConfig{}
}

// Load reads the YAML file at path. An empty path is the same as New.
func Load(path string) (Config, error) {
	if path == "" {
		return New(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[config Load] failed to read %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("[config Load] failed to parse %s: %w", path, err)
	}
	return mainConfig{API: API{file: file.API}, Log: Log{file: file.Log}}, nil
}

// LoadEnvFiles sets environment variables from .env files. Variables already set are kept.
func LoadEnvFiles(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("[config LoadEnvFiles] %w", err)
	}
	return nil
}
