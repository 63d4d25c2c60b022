package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

// CheckStructure verifies that the standard directories exist in the target.
func CheckStructure(root string, manifest *templates.Manifest) []Result {
	var results []Result
	dirs := []string{manifest.Dirs.RulesDest, manifest.Dirs.DocsDest, manifest.Dirs.AIDocsDest}

	for _, dir := range dirs {
		fullPath := filepath.Join(root, filepath.FromSlash(dir))
		info, err := os.Stat(fullPath)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorMissingRequiredDirFmt, dir),
				Recommendation: messages.DoctorMissingRequiredDirRecommend,
			})
			continue
		}
		if !info.IsDir() {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameStructure,
				Message:        fmt.Sprintf(messages.DoctorPathNotDirFmt, dir),
				Recommendation: messages.DoctorPathNotDirRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameStructure,
			Message:   fmt.Sprintf(messages.DoctorDirExistsFmt, dir),
		})
	}
	return results
}

// CheckGitignore verifies that every marker line is present in the target's
// .gitignore. Missing markers are warnings; a re-deploy restores them.
func CheckGitignore(root string, manifest *templates.Manifest) []Result {
	path := filepath.Join(root, ".gitignore")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Result{{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameGitignore,
				Message:        messages.DoctorGitignoreMissing,
				Recommendation: messages.DoctorGitignoreRecommend,
			}}
		}
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameGitignore,
			Message:   fmt.Sprintf(messages.DoctorGitignoreReadFailedFmt, err),
		}}
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		present[strings.TrimRight(line, "\r")] = true
	}

	var results []Result
	for _, marker := range manifest.Gitignore.Markers {
		if !present[marker] {
			results = append(results, Result{
				Status:         StatusWarn,
				CheckName:      messages.DoctorCheckNameGitignore,
				Message:        fmt.Sprintf(messages.DoctorGitignoreMarkerMissingFmt, marker),
				Recommendation: messages.DoctorGitignoreRecommend,
			})
		}
	}
	if len(results) == 0 {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameGitignore,
			Message:   messages.DoctorGitignoreOK,
		})
	}
	return results
}
