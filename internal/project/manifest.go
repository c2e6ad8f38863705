// Package project locates and parses the pyfieldlint.toml project
// manifest. Every setting is optional; CLI flags override the manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the checker looks for when walking up from
// the working directory.
const ManifestName = "pyfieldlint.toml"

// Manifest is a parsed pyfieldlint.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML structure.
type Config struct {
	Check CheckConfig `toml:"check"`
}

// CheckConfig is the [check] table.
type CheckConfig struct {
	Paths          []string `toml:"paths"`
	Exclude        []string `toml:"exclude"`
	Format         string   `toml:"format"`
	Jobs           int      `toml:"jobs"`
	MaxDiagnostics int      `toml:"max-diagnostics"`
	NoWarnings     bool     `toml:"no-warnings"`
	DiskCache      bool     `toml:"disk-cache"`
}

// FindManifest walks up from startDir to locate pyfieldlint.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load walks up from startDir and parses the manifest when present. A
// missing manifest is (nil, false, nil), not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := parseFile(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func parseFile(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, key.String())
	}
	if cfg.Check.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if cfg.Check.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [check].max-diagnostics must not be negative", path)
	}
	switch cfg.Check.Format {
	case "", "pretty", "short", "json", "sarif":
	default:
		return Config{}, fmt.Errorf("%s: [check].format must be one of pretty, short, json, sarif", path)
	}
	return cfg, nil
}

// ResolvePaths turns the manifest's check paths into absolute paths
// rooted at the manifest directory. An empty list defaults to the root
// itself.
func (m *Manifest) ResolvePaths() []string {
	if len(m.Config.Check.Paths) == 0 {
		return []string{m.Root}
	}
	out := make([]string, 0, len(m.Config.Check.Paths))
	for _, p := range m.Config.Check.Paths {
		if filepath.IsAbs(p) {
			out = append(out, p)
		} else {
			out = append(out, filepath.Join(m.Root, filepath.FromSlash(p)))
		}
	}
	return out
}
