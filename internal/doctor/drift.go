package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

// DefaultDiffMaxLines is the default cap on drift preview length per rule.
const DefaultDiffMaxLines = 40

// CheckDrift compares deployed rule files against their bundled versions.
// Drifted rules get a unified-diff preview; rules present only in the target
// are reported as local additions. Deploy never touches either kind, so all
// drift results are informational.
func CheckDrift(root string, source fs.FS, manifest *templates.Manifest, maxLines int) []Result {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}
	rulesDir := filepath.Join(root, filepath.FromSlash(manifest.Dirs.RulesDest))

	bundled := make(map[string]bool)
	var results []Result
	entries, err := fs.ReadDir(source, manifest.Dirs.RulesSource)
	if err != nil {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameDrift,
			Message:   fmt.Sprintf(messages.DoctorRuleReadFailedFmt, manifest.Dirs.RulesSource, err),
		}}
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != templates.RuleExtension {
			continue
		}
		bundled[name] = true

		bundledData, readErr := fs.ReadFile(source, path.Join(manifest.Dirs.RulesSource, name))
		if readErr != nil {
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameDrift,
				Message:   fmt.Sprintf(messages.DoctorRuleReadFailedFmt, name, readErr),
			})
			continue
		}
		deployedData, readErr := os.ReadFile(filepath.Join(rulesDir, name))
		if readErr != nil {
			if errors.Is(readErr, os.ErrNotExist) {
				results = append(results, Result{
					Status:         StatusWarn,
					CheckName:      messages.DoctorCheckNameDrift,
					Message:        fmt.Sprintf(messages.DoctorRuleMissingFmt, name),
					Recommendation: messages.DoctorMissingRequiredDirRecommend,
				})
				continue
			}
			results = append(results, Result{
				Status:    StatusFail,
				CheckName: messages.DoctorCheckNameDrift,
				Message:   fmt.Sprintf(messages.DoctorRuleReadFailedFmt, name, readErr),
			})
			continue
		}

		if string(bundledData) == string(deployedData) {
			results = append(results, Result{
				Status:    StatusOK,
				CheckName: messages.DoctorCheckNameDrift,
				Message:   fmt.Sprintf(messages.DoctorRuleMatchesFmt, name),
			})
			continue
		}
		diff := udiff.Unified("bundled/"+name, "deployed/"+name, string(bundledData), string(deployedData))
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameDrift,
			Message:        fmt.Sprintf(messages.DoctorRuleDriftedFmt, name, truncateDiff(diff, maxLines)),
			Recommendation: messages.DoctorRuleDriftRecommend,
		})
	}

	results = append(results, localRules(rulesDir, bundled)...)
	return results
}

// localRules reports .mdc files in the target rules directory that have no
// bundled counterpart.
func localRules(rulesDir string, bundled map[string]bool) []Result {
	entries, err := os.ReadDir(rulesDir)
	if err != nil {
		// A missing rules directory is already reported by CheckStructure.
		return nil
	}
	var results []Result
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != templates.RuleExtension || bundled[name] {
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameDrift,
			Message:   fmt.Sprintf(messages.DoctorRuleLocalFmt, name),
		})
	}
	return results
}

func truncateDiff(diff string, maxLines int) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) <= maxLines {
		return diff
	}
	return strings.Join(lines[:maxLines], "\n") + "\n" + messages.DoctorDriftTruncatedNotice + "\n"
}
