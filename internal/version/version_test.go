package version_test

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"pyfieldlint/internal/version"
)

func TestVersionIsPlain(t *testing.T) {
	if strings.Contains(version.Version, "\x1b") {
		t.Errorf("version embeds escape codes: %q", version.Version)
	}
}

func TestColoredMatchesVersionWithoutColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	if got := version.Colored(); got != version.Version {
		t.Errorf("colored = %q, want %q", got, version.Version)
	}
}
