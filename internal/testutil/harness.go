// Package testutil provides the shared harness and model fixtures the
// integration tests load views with.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/hclview/internal/ctxlog"
	"github.com/vk/hclview/internal/engine"
	"github.com/vk/hclview/internal/registry"
	"github.com/vk/hclview/internal/schema"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// LoadSpec describes one harness run: the documents to lay out on disk, the
// entry document, the model, and the engine configuration.
type LoadSpec struct {
	// Files maps relative paths to document contents. Nested directories
	// are created as needed.
	Files map[string]string
	// Entry is the relative path of the document to load.
	Entry string
	// Model is the object the view binds against.
	Model schema.Bindable
	// Registry supplies controller constructors; nil means none.
	Registry *registry.Registry
	// Strict and Prefix configure the engine.
	Strict bool
	Prefix string
}

// HarnessResult holds the outcomes of a harness load.
type HarnessResult struct {
	View      *engine.View
	Err       error
	LogOutput string
}

// RunLoad writes the given documents to a temporary directory, runs a full
// load with a debug-level logger, and returns the view together with the
// captured log output.
func RunLoad(t *testing.T, spec LoadSpec) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range spec.Files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	eng := engine.New(spec.Registry, engine.Options{
		AttributePrefix: spec.Prefix,
		Strict:          spec.Strict,
	})
	view, err := eng.Load(ctx, spec.Model, filepath.Join(dir, spec.Entry))

	if os.Getenv("HCLVIEW_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		View:      view,
		Err:       err,
		LogOutput: logBuffer.String(),
	}
}
