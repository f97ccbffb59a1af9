package registry

import (
	"strings"
	"testing"

	"github.com/ade-labs/ade/internal/manifest"
)

func ginDocument() *manifest.Document {
	return &manifest.Document{
		Version: "1.0.0",
		Stacks: []manifest.StackEntry{
			{
				Language:  "go",
				Framework: "gin",
				Service:   "rest",
				Folders:   []string{"{domain}/src", "{domain}/docs/"},
				Files:     []string{"{domain}/src/README.md"},
				Notes:     []string{"run go mod init"},
			},
		},
		Extensions: map[string]manifest.ExtensionEntry{
			"Docker": {
				Folders: []string{"{{domain}}/deploy"},
				Files:   []string{"{{domain}}/deploy/Dockerfile"},
			},
		},
	}
}

func TestNewAndLookup(t *testing.T) {
	r, err := New(ginDocument())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	def, ok := r.Lookup(NewStackKey("go", "gin", "rest"))
	if !ok {
		t.Fatal("Lookup(go/gin/rest) not found")
	}
	if got := strings.Join(def.Folders, ","); got != "{domain}/src,{domain}/docs" {
		t.Errorf("Folders = %q (templates should be cleaned)", got)
	}
	if len(def.Notes) != 1 {
		t.Errorf("Notes = %v", def.Notes)
	}
}

func TestLookupNormalizesKey(t *testing.T) {
	r, err := New(ginDocument())
	if err != nil {
		t.Fatal(err)
	}

	tests := []StackKey{
		{Language: "Go", Framework: "GIN", Service: "Rest"},
		{Language: " go ", Framework: "gin", Service: "rest"},
		NewStackKey("GO", "Gin", "REST"),
	}
	for _, key := range tests {
		if _, ok := r.Lookup(key); !ok {
			t.Errorf("Lookup(%+v) not found", key)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	r, err := New(ginDocument())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Lookup(NewStackKey("cobol", "none", "none")); ok {
		t.Error("Lookup(cobol/none/none) should miss")
	}
	if _, ok := r.LookupExtension("helm"); ok {
		t.Error("LookupExtension(helm) should miss")
	}
}

func TestLookupExtensionNormalizesName(t *testing.T) {
	r, err := New(ginDocument())
	if err != nil {
		t.Fatal(err)
	}
	ext, ok := r.LookupExtension("docker")
	if !ok {
		t.Fatal("LookupExtension(docker) not found")
	}
	if ext.Name != "docker" {
		t.Errorf("Name = %q, want %q", ext.Name, "docker")
	}
}

func TestStacksAndExtensionsSorted(t *testing.T) {
	doc := ginDocument()
	doc.Stacks = append(doc.Stacks, manifest.StackEntry{
		Language: "c", Framework: "none", Service: "cli", Folders: []string{"{domain}"},
	})
	doc.Extensions["ci"] = manifest.ExtensionEntry{}

	r, err := New(doc)
	if err != nil {
		t.Fatal(err)
	}

	stacks := r.Stacks()
	if len(stacks) != 2 || stacks[0].String() != "c/none/cli" || stacks[1].String() != "go/gin/rest" {
		t.Errorf("Stacks() = %v", stacks)
	}
	exts := r.Extensions()
	if strings.Join(exts, ",") != "ci,docker" {
		t.Errorf("Extensions() = %v", exts)
	}
}

func TestNewRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*manifest.Document)
		want   string
	}{
		{
			name: "duplicate stack after folding",
			mutate: func(d *manifest.Document) {
				d.Stacks = append(d.Stacks, manifest.StackEntry{Language: "GO", Framework: "Gin", Service: "REST"})
			},
			want: "duplicate",
		},
		{
			name: "duplicate extension after folding",
			mutate: func(d *manifest.Document) {
				d.Extensions["docker"] = manifest.ExtensionEntry{}
			},
			want: "more than once",
		},
		{
			name: "blank service",
			mutate: func(d *manifest.Document) {
				d.Stacks[0].Service = "  "
			},
			want: "required",
		},
		{
			name: "template outside domain",
			mutate: func(d *manifest.Document) {
				d.Stacks[0].Folders = append(d.Stacks[0].Folders, "shared/lib")
			},
			want: "must start with",
		},
		{
			name: "parent reference",
			mutate: func(d *manifest.Document) {
				d.Stacks[0].Files = []string{"{domain}/../etc/passwd"}
			},
			want: "'..'",
		},
		{
			name: "absolute template",
			mutate: func(d *manifest.Document) {
				d.Stacks[0].Folders = []string{"/{domain}/src"}
			},
			want: "relative",
		},
		{
			name: "stack path is folder and file",
			mutate: func(d *manifest.Document) {
				d.Stacks[0].Files = append(d.Stacks[0].Files, "{domain}/docs")
			},
			want: "both a folder and a file",
		},
		{
			name: "extension path is folder and file",
			mutate: func(d *manifest.Document) {
				d.Extensions["Docker"] = manifest.ExtensionEntry{
					Folders: []string{"{domain}/deploy/Dockerfile"},
					Files:   []string{"{{domain}}/deploy/Dockerfile"},
				}
			},
			want: "both a folder and a file",
		},
		{
			name: "file at domain root",
			mutate: func(d *manifest.Document) {
				d.Extensions["Docker"] = manifest.ExtensionEntry{Files: []string{"{domain}"}}
			},
			want: "domain root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ginDocument()
			tt.mutate(doc)
			_, err := New(doc)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.want)
			}
		})
	}
}

func TestNewNilDocument(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil document")
	}
}
