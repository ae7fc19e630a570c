package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev build",
			info: Info{Version: "dev", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "swatch version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "v1.2.0", Commit: "0123456789abcdef", Date: "2025-01-01T00:00:00Z", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "swatch version v1.2.0 (commit: 01234567, built: 2025-01-01T00:00:00Z, go1.25.1, linux/amd64)",
		},
		{
			name: "short dirty commit",
			info: Info{Version: "dev", Commit: "abc", Modified: true, GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "swatch version dev (commit: abc-dirty, go1.25.1, darwin/arm64)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPrefersLinkerValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version, Commit, Date = "v9.9.9", "fedcba9876543210", "2025-06-01T12:00:00Z"

	info := Get()
	if info.Version != "v9.9.9" || info.Commit != "fedcba9876543210" || info.Date != "2025-06-01T12:00:00Z" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.GoVersion != runtime.Version() || info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected runtime fields: %+v", info)
	}
	if Short() != "v9.9.9" {
		t.Errorf("Short() = %q, want %q", Short(), "v9.9.9")
	}
	if !strings.HasPrefix(String(), "swatch version v9.9.9 (commit: fedcba98,") {
		t.Errorf("String() = %q", String())
	}
}
