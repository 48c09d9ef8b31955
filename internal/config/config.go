// Package config loads process-wide tunables for the natalie core: heap
// block size, the per-size-class GC trigger threshold, and lexer
// comment-preservation mode.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/heap"
)

// Config is the natalie process's runtime configuration.
type Config struct {
	Heap  HeapConfig  `mapstructure:"heap"`
	Lexer LexerConfig `mapstructure:"lexer"`
}

// HeapConfig tunes internal/runtime/heap.
type HeapConfig struct {
	// BlockSizeKB is the configured block size in KiB. It is reported for
	// diagnostic purposes but cannot be applied at runtime: heap.BlockSize
	// is a compile-time constant that fixes how many cells every HeapBlock
	// holds. Validate does not compare the two; a mismatch between
	// BlockSizeKB and heap.BlockSize is reported by BlockSizeMatchesCompiled,
	// not silently applied.
	BlockSizeKB int `mapstructure:"block_size_kb"`

	// HighLoadThreshold is the per-size-class occupancy fraction (0, 1)
	// that heap.ShouldCollect reports against and above which Collect adds a
	// block after its sweep, applied to heap.HighLoadThreshold by Apply.
	HighLoadThreshold float64 `mapstructure:"high_load_threshold"`
}

// LexerConfig tunes internal/compiler/lexer.
type LexerConfig struct {
	// PreserveComments controls whether comment tokens survive lexing,
	// applied via lexer.Lexer.SetPreserveComments.
	PreserveComments bool `mapstructure:"preserve_comments"`
}

const defaultBlockSizeKB = 32 // matches heap.BlockSize = 32 * 1024

// Load reads natalie.yml/natalie.yaml from the current directory (falling
// back to defaults if none exists), with NATALIE_-prefixed environment
// variables overriding file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("heap.block_size_kb", defaultBlockSizeKB)
	v.SetDefault("heap.high_load_threshold", 0.90)
	v.SetDefault("lexer.preserve_comments", false)

	v.SetConfigName("natalie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("NATALIE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configuration this process cannot honor.
func (c *Config) Validate() error {
	if c.Heap.BlockSizeKB <= 0 {
		return fmt.Errorf("heap.block_size_kb must be positive, got: %d", c.Heap.BlockSizeKB)
	}
	if c.Heap.HighLoadThreshold <= 0 || c.Heap.HighLoadThreshold >= 1 {
		return fmt.Errorf("heap.high_load_threshold must be between 0 and 1 exclusive, got: %v", c.Heap.HighLoadThreshold)
	}
	return nil
}

// BlockSizeMatchesCompiled reports whether BlockSizeKB agrees with the
// compiled-in heap.BlockSize, which cannot be changed at runtime (see
// HeapConfig.BlockSizeKB).
func (c *Config) BlockSizeMatchesCompiled() bool {
	return c.Heap.BlockSizeKB*1024 == heap.BlockSize
}

// Apply pushes the tunables that can be applied at runtime onto the heap
// package's process-wide state. It may be called before or after heap.New:
// the heap reads heap.HighLoadThreshold afresh on every check.
func (c *Config) Apply() {
	heap.HighLoadThreshold = c.Heap.HighLoadThreshold
}
