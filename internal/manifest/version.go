package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the range of registry document versions this build reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// CheckVersion returns an error unless version parses as semver and falls
// inside SupportedVersions. A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing registry version %q: %w", version, err)
	}

	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported range: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("registry version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}
