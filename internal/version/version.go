// Package version provides centralized version management for calchub.
// Build information is injected through -ldflags and validated as a semantic version.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information that can be set at compile time via -ldflags
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// GitCommit is the git commit hash when the binary was built
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"
)

// versionCodenames names minor releases after calculating instruments.
var versionCodenames = map[string]string{
	"0.1.0": "Abacus",
	"0.2.0": "Napier",
	"0.3.0": "Pascaline",
	"0.4.0": "Arithmometer",
	"0.5.0": "Comptometer",
	"1.0.0": "Curta",
}

// Info represents comprehensive version information
type Info struct {
	Version   string          `json:"version"`
	Codename  string          `json:"codename"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetVersion returns the current version string
func GetVersion() string {
	return Version
}

// GetCodename returns the codename for the current version
func GetCodename() string {
	return GetCodenameForVersion(Version)
}

// GetCodenameForVersion returns the codename of version, falling back to its major.minor.0 release.
func GetCodenameForVersion(version string) string {
	if codename, exists := versionCodenames[version]; exists {
		return codename
	}
	sv, err := semver.NewVersion(version)
	if err != nil {
		return ""
	}
	return versionCodenames[fmt.Sprintf("%d.%d.0", sv.Major(), sv.Minor())]
}

// GetInfo returns comprehensive version information
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		Codename:  GetCodename(),
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		SemVer:    sv,
	}, nil
}

func title(info *Info) string {
	if info.Codename != "" {
		return fmt.Sprintf("calchub v%s '%s'", info.Version, info.Codename)
	}
	return fmt.Sprintf("calchub v%s", info.Version)
}

// GetFormattedVersion returns a one-line version string
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("calchub v%s (invalid version)", Version)
	}

	parts := []string{title(info)}
	if info.GitCommit != "unknown" && info.GitCommit != "" {
		shortCommit := info.GitCommit
		if len(shortCommit) > 7 {
			shortCommit = shortCommit[:7]
		}
		parts = append(parts, fmt.Sprintf("commit %s", shortCommit))
	}
	if info.BuildDate != "unknown" && info.BuildDate != "" {
		parts = append(parts, fmt.Sprintf("built %s", info.BuildDate))
	}
	return strings.Join(parts, ", ")
}

// GetDetailedVersion returns detailed version information for debugging
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("calchub v%s (error: %v)", Version, err)
	}

	lines := []string{
		title(info),
		fmt.Sprintf("Git Commit: %s", info.GitCommit),
		fmt.Sprintf("Build Date: %s", info.BuildDate),
	}
	if meta := info.SemVer.Metadata(); meta != "" {
		lines = append(lines, fmt.Sprintf("Build Metadata: %s", meta))
	}
	lines = append(lines,
		fmt.Sprintf("Go Version: %s", info.GoVersion),
		fmt.Sprintf("Platform: %s", info.Platform),
	)
	return strings.Join(lines, "\n")
}

// ValidateVersion validates that the current version is a valid semantic version
func ValidateVersion() error {
	if _, err := semver.NewVersion(Version); err != nil {
		return fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}
	return nil
}

// IsPrerelease returns true if the current version is a prerelease
func IsPrerelease() bool {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return false
	}
	return sv.Prerelease() != ""
}

// IsDevelopment returns true if this appears to be a development build
func IsDevelopment() bool {
	return GitCommit == "unknown" || BuildDate == "unknown"
}

// CompareVersions returns -1, 0 or 1 as v1 is older than, equal to or newer than v2.
func CompareVersions(v1, v2 string) (int, error) {
	sv1, err := semver.NewVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid version v1 '%s': %w", v1, err)
	}
	sv2, err := semver.NewVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid version v2 '%s': %w", v2, err)
	}
	return sv1.Compare(sv2), nil
}

// SetBuildInfo sets build information (used for testing)
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}
