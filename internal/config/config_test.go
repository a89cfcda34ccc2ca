package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/fieldbuf/internal/testutil/testlog"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestParsesFields(t *testing.T) {
	testlog.Start(t)
	path := writeManifest(t, `
title = "handshake fields"

[[field]]
name = "proto.version"
capacity = 8
value = "v2.2"

[[field]]
name = "session.token"
capacity = 32
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if m.Title != "handshake fields" {
		t.Fatalf("unexpected title: %q", m.Title)
	}
	if len(m.Fields) != 2 {
		t.Fatalf("unexpected field count: %d", len(m.Fields))
	}
	if m.Fields[0].Name != "proto.version" || m.Fields[0].Capacity != 8 || m.Fields[0].Value != "v2.2" {
		t.Fatalf("unexpected first entry: %+v", m.Fields[0])
	}
	if m.Fields[1].Value != "" {
		t.Fatalf("expected empty default value, got %q", m.Fields[1].Value)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	testlog.Start(t)
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestLoadManifestBadToml(t *testing.T) {
	testlog.Start(t)
	path := writeManifest(t, `[[field` + "\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateManifestFailures(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		name     string
		manifest Manifest
	}{
		{"no fields", Manifest{}},
		{"empty name", Manifest{Fields: []FieldEntry{{Name: "", Capacity: 4}}}},
		{"zero capacity", Manifest{Fields: []FieldEntry{{Name: "a.b", Capacity: 0}}}},
		{"negative capacity", Manifest{Fields: []FieldEntry{{Name: "a.b", Capacity: -2}}}},
		{"duplicate name", Manifest{Fields: []FieldEntry{
			{Name: "a.b", Capacity: 4},
			{Name: "a.b", Capacity: 8},
		}}},
	}
	for _, tt := range cases {
		if err := ValidateManifest(tt.manifest); err == nil {
			t.Fatalf("%s: expected validation error", tt.name)
		}
	}
}

func TestWriteTemplateRoundTrips(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "fields.toml")
	if err := WriteTemplate(path, "handshake", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("template does not load: %v", err)
	}
	if len(m.Fields) == 0 {
		t.Fatalf("template declares no fields")
	}

	if err := WriteTemplate(path, "handshake", false); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if err := WriteTemplate(path, "blank", true); err != nil {
		t.Fatalf("overwrite with force: %v", err)
	}
}

func TestTemplateUnknownKind(t *testing.T) {
	testlog.Start(t)
	if _, err := Template("bogus"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestLintItemsConversionTrimsNames(t *testing.T) {
	testlog.Start(t)
	items := LintItems([]FieldEntry{
		{Name: "  proto.version  ", Capacity: 8, Value: "v2.2"},
		{Name: "peer.identity", Capacity: 24},
	})
	if len(items) != 2 {
		t.Fatalf("unexpected item count: %d", len(items))
	}
	if items[0].Spec.Name != "proto.version" || items[0].Spec.Capacity != 8 || items[0].Value != "v2.2" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
	if items[1].Value != "" {
		t.Fatalf("expected empty value, got %q", items[1].Value)
	}
}
