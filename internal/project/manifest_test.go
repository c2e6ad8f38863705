package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"pyfieldlint/internal/project"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[check]
paths = ["src", "tools/gen.py"]
exclude = ["vendor", "*_pb2.py"]
format = "short"
jobs = 4
max-diagnostics = 50
no-warnings = true
disk-cache = true
`)

	m, ok, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}

	cc := m.Config.Check
	if len(cc.Paths) != 2 || cc.Paths[0] != "src" {
		t.Errorf("paths = %v", cc.Paths)
	}
	if len(cc.Exclude) != 2 {
		t.Errorf("exclude = %v", cc.Exclude)
	}
	if cc.Format != "short" || cc.Jobs != 4 || cc.MaxDiagnostics != 50 {
		t.Errorf("config = %+v", cc)
	}
	if !cc.NoWarnings || !cc.DiskCache {
		t.Errorf("bools = %v %v", cc.NoWarnings, cc.DiskCache)
	}

	resolved := m.ResolvePaths()
	if len(resolved) != 2 || resolved[0] != filepath.Join(dir, "src") {
		t.Errorf("resolved = %v", resolved)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	m, ok, err := project.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || m != nil {
		t.Errorf("missing manifest: ok = %v, m = %v", ok, m)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[check]\n")
	sub := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := project.FindManifest(sub)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || got != want {
		t.Errorf("found = %q (%v), want %q", got, ok, want)
	}
}

func TestUnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[check]\ntypo = true\n")
	if _, _, err := project.Load(dir); err == nil {
		t.Error("unknown key should fail")
	}
}

func TestBadValuesRejected(t *testing.T) {
	cases := []string{
		"[check]\njobs = -1\n",
		"[check]\nmax-diagnostics = -5\n",
		"[check]\nformat = \"xml\"\n",
	}
	for _, content := range cases {
		dir := t.TempDir()
		writeManifest(t, dir, content)
		if _, _, err := project.Load(dir); err == nil {
			t.Errorf("manifest %q should fail", content)
		}
	}
}

func TestResolvePathsDefaultsToRoot(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[check]\n")
	m, _, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := m.ResolvePaths()
	if len(got) != 1 || got[0] != dir {
		t.Errorf("resolved = %v, want [%s]", got, dir)
	}
}
