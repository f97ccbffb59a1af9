//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME for the user config directory
	ProjectDir string // where domains are scaffolded
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so nothing outside the test is read or written.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// registryJSON has one stack per service layout, with every template rooted
// at {domain}/<service> so scaffolded trees satisfy the domain layout.
const registryJSON = `{
  "version": "1.0.0",
  "conventions": {
    "domainLayout": {
      "enforce": true,
      "requiredSubdirs": ["src", "tests"],
      "denyAtRoot": ["src", "lib"]
    }
  },
  "stacks": [
    {
      "language": "go",
      "framework": "chi",
      "service": "rest",
      "description": "chi HTTP API",
      "folders": ["{domain}/api/src", "{domain}/api/tests"],
      "files": ["{domain}/api/src/main.go", "{domain}/api/go.mod"],
      "notes": ["cd {domain}/api && go mod tidy"]
    },
    {
      "language": "typescript",
      "framework": "nest",
      "service": "worker",
      "folders": ["{{domain}}/worker/src", "{{domain}}/worker/tests"],
      "files": ["{{domain}}/worker/src/main.ts", "{{domain}}/worker/package.json"]
    }
  ],
  "extensions": {
    "docker": {
      "description": "Container build",
      "folders": ["{domain}/api/deploy"],
      "files": ["{domain}/api/deploy/Dockerfile"],
      "notes": ["docker build {domain}/api"]
    },
    "openapi": {
      "folders": ["{domain}/api/src", "{domain}/api/docs"],
      "files": ["{domain}/api/docs/openapi.yaml"]
    }
  }
}
`

// writeRegistry writes registryJSON into dir and returns its path.
func writeRegistry(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config", "stack-registry.json")
	writeFile(t, path, registryJSON)
	return path
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContent fails if the file doesn't exist or differs from want.
func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if string(data) != want {
		t.Errorf("file %s = %q, want %q", path, string(data), want)
	}
}
