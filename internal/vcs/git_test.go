package vcs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"codeorder/internal/testutil"
)

// TestDiscoverRepoRoot verifies repo discovery through the runner.
func TestDiscoverRepoRoot(t *testing.T) {
	ctx := testutil.Context(t, 0)
	root := filepath.Join(t.TempDir(), "repo")
	subdir := filepath.Join(root, "nested")

	fake := &fakeGitRunner{responses: map[string]string{
		"rev-parse --show-toplevel": root,
	}}
	client := NewClient(fake)

	actualRoot, err := client.DiscoverRepoRoot(ctx, subdir)
	if err != nil {
		t.Fatalf("discover repo root: %v", err)
	}
	if actualRoot != root {
		t.Fatalf("expected root %q, got %q", root, actualRoot)
	}
	if fake.lastDir != subdir {
		t.Fatalf("expected git to run in %q, got %q", subdir, fake.lastDir)
	}

	projectRoot, err := client.ProjectRoot(ctx, subdir)
	if err != nil {
		t.Fatalf("project root: %v", err)
	}
	if projectRoot != root {
		t.Fatalf("expected project root %q, got %q", root, projectRoot)
	}
}

// TestProjectRootOutsideRepo falls back to the start directory.
func TestProjectRootOutsideRepo(t *testing.T) {
	ctx := testutil.Context(t, 0)
	dir := t.TempDir()
	client := NewClient(&fakeGitRunner{responses: map[string]string{}})

	if _, err := client.DiscoverRepoRoot(ctx, dir); err == nil {
		t.Fatalf("expected discovery error")
	}
	root, err := client.ProjectRoot(ctx, dir)
	if err != nil {
		t.Fatalf("project root: %v", err)
	}
	if root != dir {
		t.Fatalf("expected %q, got %q", dir, root)
	}
}

// fakeGitRunner returns canned outputs for git commands in tests.
type fakeGitRunner struct {
	responses map[string]string
	lastDir   string
}

// Run satisfies gitRunner for test doubles.
func (f *fakeGitRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.lastDir = dir
	key := strings.Join(args, " ")
	if value, ok := f.responses[key]; ok {
		return value, nil
	}
	return "", fmt.Errorf("unexpected git args: %s", key)
}
