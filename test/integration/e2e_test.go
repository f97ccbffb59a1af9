//go:build integration

package integration_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ade-labs/ade/internal/layout"
	"github.com/ade-labs/ade/internal/registry"
	"github.com/ade-labs/ade/internal/scaffold"
	"github.com/spf13/afero"
)

// TestFullFlowScaffoldAndValidate tests the complete flow:
// locate registry -> resolve with extensions -> apply on disk -> validate layout.
func TestFullFlowScaffoldAndValidate(t *testing.T) {
	env := setupTestEnv(t)
	regPath := writeRegistry(t, env.ProjectDir)

	// Step 1: Discover and load the registry.
	path, err := registry.FindFile("", []string{
		filepath.Join(env.ProjectDir, "cli", "config", "stack-registry.json"),
		regPath,
	})
	if err != nil {
		t.Fatalf("FindFile: %v", err)
	}
	if path != regPath {
		t.Fatalf("FindFile = %s, want %s", path, regPath)
	}
	reg, err := registry.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Step 2: Resolve a stack with two extensions that overlap the base.
	plan, err := scaffold.Resolve(scaffold.Request{
		Language:  "Go",
		Framework: "CHI",
		Service:   "rest",
		Domain:    "billing",
		With:      scaffold.ParseWith("docker, openapi"),
	}, reg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	wantFolders := []string{"billing/api/src", "billing/api/tests", "billing/api/deploy", "billing/api/docs"}
	if len(plan.Folders) != len(wantFolders) {
		t.Fatalf("folders = %v, want %v", plan.Folders, wantFolders)
	}
	for i := range wantFolders {
		if plan.Folders[i] != wantFolders[i] {
			t.Errorf("folders[%d] = %s, want %s", i, plan.Folders[i], wantFolders[i])
		}
	}

	// Step 3: Apply to the project directory, with one file already present.
	existing := filepath.Join(env.ProjectDir, "billing", "api", "go.mod")
	writeFile(t, existing, "module billing\n")

	fsys := afero.NewBasePathFs(afero.NewOsFs(), env.ProjectDir)
	result, err := scaffold.Apply(context.Background(), fsys, plan, scaffold.ApplyOptions{Workers: 2})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, f := range wantFolders {
		assertDirExists(t, filepath.Join(env.ProjectDir, filepath.FromSlash(f)))
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "billing", "api", "src", "main.go"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "billing", "api", "deploy", "Dockerfile"))
	assertFileExists(t, filepath.Join(env.ProjectDir, "billing", "api", "docs", "openapi.yaml"))
	assertFileContent(t, existing, "module billing\n")
	if len(result.SkippedFiles) != 1 || result.SkippedFiles[0] != "billing/api/go.mod" {
		t.Errorf("skipped = %v, want [billing/api/go.mod]", result.SkippedFiles)
	}

	// Step 4: The scaffolded tree satisfies the registry's domain layout.
	report, err := layout.Validate(afero.NewOsFs(), env.ProjectDir, reg.Conventions())
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !report.Valid {
		t.Errorf("layout invalid: %v", report.Errors)
	}

	// Step 5: Applying again creates nothing.
	again, err := scaffold.Apply(context.Background(), fsys, plan, scaffold.ApplyOptions{})
	if err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if len(again.CreatedFolders) != 0 || len(again.CreatedFiles) != 0 {
		t.Errorf("second apply created %v %v", again.CreatedFolders, again.CreatedFiles)
	}
	if len(again.SkippedFiles) != len(plan.Files) {
		t.Errorf("second apply skipped %d files, want %d", len(again.SkippedFiles), len(plan.Files))
	}
}

func TestFullFlowResolutionFailuresWriteNothing(t *testing.T) {
	env := setupTestEnv(t)
	reg, err := registry.Load(writeRegistry(t, env.ProjectDir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		req  scaffold.Request
		want error
	}{
		{
			name: "unknown extension",
			req:  scaffold.Request{Language: "go", Framework: "chi", Service: "rest", Domain: "orders", With: []string{"docker", "helm"}},
			want: scaffold.ErrUnknownExtension,
		},
		{
			name: "unknown stack",
			req:  scaffold.Request{Language: "go", Framework: "chi", Service: "worker", Domain: "orders"},
			want: scaffold.ErrUnknownStack,
		},
		{
			name: "escaping domain",
			req:  scaffold.Request{Language: "go", Framework: "chi", Service: "rest", Domain: ".."},
			want: scaffold.ErrInvalidDomain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := scaffold.Resolve(tt.req, reg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Resolve error = %v, want %v", err, tt.want)
			}
			if plan != nil {
				t.Errorf("expected no plan, got %+v", plan)
			}
			assertFileNotExists(t, filepath.Join(env.ProjectDir, "orders"))
		})
	}
}

func TestFullFlowDoubleBracePlaceholder(t *testing.T) {
	env := setupTestEnv(t)
	reg, err := registry.Load(writeRegistry(t, env.ProjectDir))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	plan, err := scaffold.Resolve(scaffold.Request{
		Language: "typescript", Framework: "nest", Service: "worker", Domain: "mailer", Preview: true,
	}, reg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if plan.Files[0] != "mailer/worker/src/main.ts" {
		t.Errorf("files[0] = %s", plan.Files[0])
	}
	if n := plan.Notes; len(n) != 1 || n[0] != scaffold.PreviewNote {
		t.Errorf("notes = %v, want [%s]", n, scaffold.PreviewNote)
	}
}
