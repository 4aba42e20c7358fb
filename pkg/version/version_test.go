package version

import (
	"strings"
	"testing"
)

func TestGetShortVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "v1.2.0", "unknown"
	if got := GetShortVersion(); got != "v1.2.0" {
		t.Errorf("GetShortVersion() = %q", got)
	}

	GitCommit = "0123456789abcdef"
	if got := GetShortVersion(); got != "v1.2.0 (0123456)" {
		t.Errorf("GetShortVersion() = %q", got)
	}
}

func TestGetLongVersion(t *testing.T) {
	origComponent := Component
	defer func() { Component = origComponent }()

	Component = "prctl"
	out := GetLongVersion()
	if !strings.HasPrefix(out, "prctl version ") {
		t.Errorf("unexpected first line: %q", out)
	}
	if !strings.Contains(out, "Platform: ") {
		t.Errorf("missing platform: %q", out)
	}
}
