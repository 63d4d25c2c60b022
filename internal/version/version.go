// Package version normalizes and formats rulekit version strings.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fenwick-labs/rulekit/internal/messages"
)

// Normalize validates a version string of the form vX.Y.Z or X.Y.Z and
// returns it with the leading "v" stripped.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	candidate := strings.TrimPrefix(trimmed, "v")
	parts := strings.Split(candidate, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	for _, part := range parts {
		if part == "" {
			return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
		}
		if _, err := strconv.Atoi(part); err != nil {
			return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
		}
	}
	return candidate, nil
}

// String formats the version, commit, and build date for --version output.
// Unknown commit and build values are omitted.
func String(version string, commit string, buildDate string) string {
	details := make([]string, 0, 2)
	if commit != "" && commit != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionCommitFmt, commit))
	}
	if buildDate != "" && buildDate != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionBuildFmt, buildDate))
	}
	if len(details) == 0 {
		return version
	}
	return fmt.Sprintf(messages.VersionFullFmt, version, strings.Join(details, ", "))
}
