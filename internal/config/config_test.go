package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/heap"
)

func TestConfig_ValidateRejectsNonPositiveBlockSize(t *testing.T) {
	c := &Config{Heap: HeapConfig{BlockSizeKB: 0, HighLoadThreshold: 0.5}}
	assert.Error(t, c.Validate())
}

func TestConfig_ValidateRejectsThresholdOutOfRange(t *testing.T) {
	c := &Config{Heap: HeapConfig{BlockSizeKB: 32, HighLoadThreshold: 1.5}}
	assert.Error(t, c.Validate())

	c.Heap.HighLoadThreshold = 0
	assert.Error(t, c.Validate())
}

func TestConfig_ValidateAcceptsDefaults(t *testing.T) {
	c := &Config{Heap: HeapConfig{BlockSizeKB: defaultBlockSizeKB, HighLoadThreshold: 0.9}}
	assert.NoError(t, c.Validate())
}

func TestConfig_BlockSizeMatchesCompiledAgreesWithDefault(t *testing.T) {
	c := &Config{Heap: HeapConfig{BlockSizeKB: defaultBlockSizeKB}}
	assert.True(t, c.BlockSizeMatchesCompiled())

	c.Heap.BlockSizeKB = defaultBlockSizeKB * 2
	assert.False(t, c.BlockSizeMatchesCompiled())
}

func TestConfig_ApplySetsHeapHighLoadThreshold(t *testing.T) {
	original := heap.HighLoadThreshold
	defer func() { heap.HighLoadThreshold = original }()

	c := &Config{Heap: HeapConfig{HighLoadThreshold: 0.42}}
	c.Apply()

	assert.Equal(t, 0.42, heap.HighLoadThreshold)
}
