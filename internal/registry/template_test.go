package registry

import "testing"

func TestExpand(t *testing.T) {
	tests := []struct {
		tmpl string
		want string
	}{
		{"{domain}/src", "billing/src"},
		{"{{domain}}/src", "billing/src"},
		{"{domain}/src/{domain}.go", "billing/src/billing.go"},
		{"{domain}/docs/{{domain}}.md", "billing/docs/billing.md"},
		{"{domain}/README.md", "billing/README.md"},
	}
	for _, tt := range tests {
		if got := Expand(tt.tmpl, "billing"); got != tt.want {
			t.Errorf("Expand(%q) = %q, want %q", tt.tmpl, got, tt.want)
		}
	}
}

func TestCheckTemplate(t *testing.T) {
	tests := []struct {
		tmpl    string
		file    bool
		want    string
		wantErr bool
	}{
		{tmpl: "{domain}/src", want: "{domain}/src"},
		{tmpl: "{domain}/./src/", want: "{domain}/src"},
		{tmpl: "{{domain}}/tests", want: "{{domain}}/tests"},
		{tmpl: "{domain}", want: "{domain}"},
		{tmpl: "{domain}", file: true, wantErr: true},
		{tmpl: "src/{domain}", wantErr: true},
		{tmpl: "{domain}/../x", wantErr: true},
		{tmpl: `{domain}\src`, wantErr: true},
		{tmpl: "/abs", wantErr: true},
		{tmpl: "   ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := checkTemplate(tt.tmpl, tt.file)
		if (err != nil) != tt.wantErr {
			t.Errorf("checkTemplate(%q) error = %v, wantErr %v", tt.tmpl, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("checkTemplate(%q) = %q, want %q", tt.tmpl, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  FastAPI "); got != "fastapi" {
		t.Errorf("Normalize() = %q, want %q", got, "fastapi")
	}
}
