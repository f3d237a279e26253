// Package testutil provides shared helpers for exercising the adapter in
// tests: a thread-safe log buffer and a harness that runs whole command
// lines against an App.
package testutil

import (
	"bytes"
	"context"
	"sync"
	"testing"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/stretchr/testify/require"

	"github.com/vk/cliwire/internal/app"
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

// RunCommand tokenizes commandLine with shell quoting rules and runs it
// against a. It fails the test on tokenizer or pipeline errors, so tests
// only assert on the Result.
func RunCommand(t *testing.T, a *app.App, commandLine string) *app.Result {
	t.Helper()

	parser := shellwords.NewParser()
	args, err := parser.Parse(commandLine)
	require.NoError(t, err, "failed to tokenize command line %q", commandLine)

	result, err := a.Run(context.Background(), args)
	require.NoError(t, err, "pipeline failed for command line %q", commandLine)
	return result
}
