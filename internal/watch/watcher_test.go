package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_DetectsWriteToMatchingFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.rb")
	require.NoError(t, os.WriteFile(testFile, []byte("initial content"), 0o644))

	var mu sync.Mutex
	var changes [][]string

	watcher, err := NewFileWatcher(
		[]string{"*.rb"},
		[]string{},
		func(files []string) error {
			mu.Lock()
			defer mu.Unlock()
			changes = append(changes, files)
			return nil
		},
		nil,
	)
	require.NoError(t, err)
	defer watcher.Stop()

	require.NoError(t, watcher.Watch([]string{tmpDir}))

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(testFile, []byte("modified content"), 0o644))
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, changes)
}

func TestDebouncer_CollapsesDuplicateAdds(t *testing.T) {
	var mu sync.Mutex
	var called bool
	var files []string

	debouncer := NewDebouncer(50 * time.Millisecond)
	debouncer.SetCallback(func(f []string) {
		mu.Lock()
		defer mu.Unlock()
		called = true
		files = f
	})

	debouncer.Add("file1.rb")
	debouncer.Add("file2.rb")
	debouncer.Add("file1.rb")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, called)
	assert.Len(t, files, 2)
}

func TestDebouncer_FlushesEachQuietPeriodSeparately(t *testing.T) {
	var mu sync.Mutex
	callCount := 0

	debouncer := NewDebouncer(30 * time.Millisecond)
	debouncer.SetCallback(func(f []string) {
		mu.Lock()
		defer mu.Unlock()
		callCount++
	})

	debouncer.Add("file1.rb")
	time.Sleep(50 * time.Millisecond)

	debouncer.Add("file2.rb")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, callCount)
}

func TestFileWatcher_ShouldIgnore(t *testing.T) {
	watcher := &FileWatcher{ignored: []string{"*.swp", ".DS_Store"}}

	tests := []struct {
		path     string
		expected bool
	}{
		{"test.rb", false},
		{"test.swp", true},
		{".DS_Store", true},
		{".hidden", true},
		{"normal.go", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, watcher.shouldIgnore(tt.path), "path %q", tt.path)
	}
}

func TestFileWatcher_MatchesPattern(t *testing.T) {
	tests := []struct {
		patterns []string
		path     string
		expected bool
	}{
		{[]string{"*.rb"}, "test.rb", true},
		{[]string{"*.rb"}, "test.go", false},
		{[]string{"*.rb", "*.gemspec"}, "lib.gemspec", true},
		{[]string{}, "anything.txt", true},
	}

	for _, tt := range tests {
		watcher := &FileWatcher{patterns: tt.patterns}
		assert.Equal(t, tt.expected, watcher.matchesPattern(tt.path))
	}
}

func TestFileWatcher_StopIsIdempotent(t *testing.T) {
	watcher, err := NewFileWatcher(
		[]string{"*.rb"},
		[]string{},
		func(files []string) error { return nil },
		nil,
	)
	require.NoError(t, err)
	require.NoError(t, watcher.Watch([]string{t.TempDir()}))

	assert.NoError(t, watcher.Stop())
	assert.NotPanics(t, func() { watcher.Stop() })
}

func BenchmarkDebouncer_Add(b *testing.B) {
	debouncer := NewDebouncer(100 * time.Millisecond)
	debouncer.SetCallback(func(files []string) {})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		debouncer.Add("file.rb")
	}
}
