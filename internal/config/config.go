package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level cardwatch.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data" mapstructure:"data"`
	Model   ModelConfig   `yaml:"model" mapstructure:"model"`
	Split   SplitConfig   `yaml:"split" mapstructure:"split"`
	Trainer TrainerConfig `yaml:"trainer" mapstructure:"trainer"`
}

// DataConfig locates the input records.
type DataConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ModelConfig locates the persisted model bundle.
type ModelConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SplitConfig controls the train/eval partition.
type SplitConfig struct {
	TestSize float64 `yaml:"test_size" mapstructure:"test_size"`
	Seed     int64   `yaml:"seed" mapstructure:"seed"`
}

// TrainerConfig holds the gradient descent hyperparameters.
type TrainerConfig struct {
	Epochs       int     `yaml:"epochs" mapstructure:"epochs"`
	LearningRate float64 `yaml:"learning_rate" mapstructure:"learning_rate"`
}

// Default returns a Config with the pipeline's standard literals.
func Default() *Config {
	return &Config{
		Data:  DataConfig{Path: "data/credit_card_records.csv"},
		Model: ModelConfig{Path: "models/model.gob"},
		Split: SplitConfig{
			TestSize: 0.2,
			Seed:     42,
		},
		Trainer: TrainerConfig{
			Epochs:       500,
			LearningRate: 0.1,
		},
	}
}

// Load reads a cardwatch.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SetViperDefaults registers the default values so config file, environment,
// and flag overrides layer on top of them.
func SetViperDefaults(v *viper.Viper) {
	cfg := Default()
	v.SetDefault("data.path", cfg.Data.Path)
	v.SetDefault("model.path", cfg.Model.Path)
	v.SetDefault("split.test_size", cfg.Split.TestSize)
	v.SetDefault("split.seed", cfg.Split.Seed)
	v.SetDefault("trainer.epochs", cfg.Trainer.Epochs)
	v.SetDefault("trainer.learning_rate", cfg.Trainer.LearningRate)
}

// FromViper resolves the effective configuration from defaults, config file,
// environment, and flags.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("resolving config: %w", err)
	}
	return &cfg, nil
}
