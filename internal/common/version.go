package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Set with -ldflags "-X github.com/ternarybob/finsight/internal/common.Version=..."
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// versionFile, when present beside the binary, overrides the linked Version
const versionFile = ".version"

// VersionInfo is reported by GET /api/version and `finsight version`
type VersionInfo struct {
	Version   string `json:"version"`
	Build     string `json:"build"`
	GitCommit string `json:"git_commit"`
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", v.Version, v.Build, v.GitCommit)
}

// GetVersion returns the current version string
func GetVersion() string {
	return Version
}

// CurrentVersion returns the running binary's version, preferring a .version file next to it
func CurrentVersion() VersionInfo {
	info := VersionInfo{Version: Version, Build: Build, GitCommit: GitCommit}
	if exe, err := os.Executable(); err == nil {
		if v := readVersionFile(filepath.Dir(exe)); v != "" {
			info.Version = v
		}
	}
	return info
}

// readVersionFile returns the trimmed content of dir/.version, or "" when absent or blank
func readVersionFile(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, versionFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
