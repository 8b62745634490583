// Package config provides configuration management for the vector store tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is loaded automatically when no -config flag is given.
const DefaultConfigPath = "configs/vsnorm.yaml"

// Collision policies for partition filenames.
const (
	CollisionSuffix    = "suffix"
	CollisionOverwrite = "overwrite"
)

// Configuration validation errors.
var (
	ErrMissingField        = errors.New("required field is empty")
	ErrInvalidField        = errors.New("field has an invalid value")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidCollision    = errors.New("partition.on_collision must be 'suffix' or 'overwrite'")
	ErrManifestCollides    = errors.New("partition.manifest_name must not end with partition.file_suffix")
	ErrOutputShadowsSource = errors.New("output would be picked up as a source file on the next run")
)

// Config represents the complete tool configuration.
type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Sources   SourcesConfig   `yaml:"sources"`
	Partition PartitionConfig `yaml:"partition"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PathsConfig lists every file and directory the tools touch.
type PathsConfig struct {
	KnowledgeBase      string `yaml:"knowledge_base_path" validate:"required"`
	VectorStoreDir     string `yaml:"vector_store_dir" validate:"required"`
	UnifiedOutput      string `yaml:"unified_output_path" validate:"required"`
	PartitionOutputDir string `yaml:"partition_output_dir" validate:"required"`
}

// SourcesConfig describes how source files are discovered and labelled.
type SourcesConfig struct {
	FileSuffix         string `yaml:"file_suffix" validate:"required"`
	KnowledgeBaseLabel string `yaml:"knowledge_base_label" validate:"required"`
}

// PartitionConfig controls the category split.
type PartitionConfig struct {
	FileSuffix       string `yaml:"file_suffix" validate:"required"`
	ManifestName     string `yaml:"manifest_name" validate:"required"`
	FallbackCategory string `yaml:"fallback_category" validate:"required"`
	OnCollision      string `yaml:"on_collision"`
	SizeWarnBytes    int64  `yaml:"size_warn_bytes" validate:"gte=0"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration. Paths are relative to the
// working directory.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			KnowledgeBase:      "vector_store_data.json",
			VectorStoreDir:     "vector_stores",
			UnifiedOutput:      "simplified_vector_store.json",
			PartitionOutputDir: "categorized_vector_stores",
		},
		Sources: SourcesConfig{
			FileSuffix:         "_vector_store.json",
			KnowledgeBaseLabel: "Cowis Knowledge Base",
		},
		Partition: PartitionConfig{
			FileSuffix:       "_vector_store.json",
			ManifestName:     "categories_summary.json",
			FallbackCategory: "Uncategorized",
			OnCollision:      CollisionSuffix,
			SizeWarnBytes:    10 * 1024 * 1024,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file. Keys missing from the
// file keep their Default values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Resolve loads path if set, otherwise DefaultConfigPath if it exists,
// otherwise Default. It returns the file actually used ("" for built-in).
func Resolve(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return Default(), "", nil
		}

		path = DefaultConfigPath
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "required" {
				return fmt.Errorf("%w: %s", ErrMissingField, fe.Namespace())
			}

			return fmt.Errorf("%w: %s (%s)", ErrInvalidField, fe.Namespace(), fe.Tag())
		}

		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Partition.OnCollision != CollisionSuffix && c.Partition.OnCollision != CollisionOverwrite {
		return ErrInvalidCollision
	}

	if strings.HasSuffix(c.Partition.ManifestName, c.Partition.FileSuffix) {
		return ErrManifestCollides
	}

	if c.isSourceFile(c.Paths.UnifiedOutput) {
		return fmt.Errorf("%w: paths.unified_output_path", ErrOutputShadowsSource)
	}

	if samePath(c.Paths.PartitionOutputDir, c.Paths.VectorStoreDir) &&
		strings.HasSuffix(c.Partition.FileSuffix, c.Sources.FileSuffix) {
		return fmt.Errorf("%w: paths.partition_output_dir", ErrOutputShadowsSource)
	}

	return nil
}

// isSourceFile reports whether path would be discovered as a support-article file.
func (c *Config) isSourceFile(path string) bool {
	return samePath(filepath.Dir(path), c.Paths.VectorStoreDir) &&
		strings.HasSuffix(filepath.Base(path), c.Sources.FileSuffix)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// ManifestPath returns the full path of the partition manifest.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.Paths.PartitionOutputDir, c.Partition.ManifestName)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{KnowledgeBase: %s, VectorStoreDir: %s, Unified: %s, PartitionDir: %s}",
		c.Paths.KnowledgeBase,
		c.Paths.VectorStoreDir,
		c.Paths.UnifiedOutput,
		c.Paths.PartitionOutputDir,
	)
}
