package deploy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fenwick-labs/rulekit/internal/messages"
)

// ensureGitignore makes sure every manifest marker line is present in the
// target's .gitignore. A missing file is created from the bundled block;
// an existing file only gains the marker lines it lacks. Lines are matched
// exactly, so repeat runs never duplicate a marker.
func (d *deployer) ensureGitignore() error {
	path := filepath.Join(d.target, ".gitignore")
	spec := d.manifest.Gitignore

	existing, err := d.sys.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.DeployFailedReadFmt, path, err)
		}
		block, blockErr := d.initialGitignore()
		if blockErr != nil {
			return blockErr
		}
		if writeErr := d.sys.WriteFileAtomic(path, block, 0o644); writeErr != nil {
			return fmt.Errorf(messages.DeployFailedWriteFmt, path, writeErr)
		}
		fmt.Fprintf(d.out, messages.DeployGitignoreCreatedFmt, path)
		return nil
	}

	updated, appended := appendMissingLines(string(existing), spec.Header, spec.Markers)
	if appended == 0 {
		fmt.Fprint(d.out, messages.DeployGitignoreUpToDate)
		return nil
	}
	if err := d.sys.WriteFileAtomic(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf(messages.DeployFailedWriteFmt, path, err)
	}
	fmt.Fprintf(d.out, messages.DeployGitignoreAppendedFmt, appended, path)
	return nil
}

// initialGitignore returns the content for a brand-new .gitignore: the
// bundled block when the source ships one, otherwise the header and markers
// from the manifest.
func (d *deployer) initialGitignore() ([]byte, error) {
	block, err := fs.ReadFile(d.source, "gitignore.block")
	if err == nil {
		return block, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(messages.DeployFailedReadSourceFmt, "gitignore.block", err)
	}
	spec := d.manifest.Gitignore
	lines := make([]string, 0, len(spec.Markers)+1)
	if spec.Header != "" {
		lines = append(lines, spec.Header)
	}
	lines = append(lines, spec.Markers...)
	return []byte(strings.Join(lines, "\n") + "\n"), nil
}

// appendMissingLines returns content with every marker not already present
// appended at the end, under header when header itself is new. The count of
// appended marker lines is returned; zero means content is unchanged.
func appendMissingLines(content string, header string, markers []string) (string, int) {
	present := make(map[string]bool)
	for _, line := range strings.Split(content, "\n") {
		present[strings.TrimRight(line, "\r")] = true
	}

	missing := make([]string, 0, len(markers))
	for _, marker := range markers {
		if !present[marker] {
			missing = append(missing, marker)
		}
	}
	if len(missing) == 0 {
		return content, 0
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	if header != "" && !present[header] {
		if content != "" {
			b.WriteString("\n")
		}
		b.WriteString(header)
		b.WriteString("\n")
	}
	for _, marker := range missing {
		b.WriteString(marker)
		b.WriteString("\n")
	}
	return b.String(), len(missing)
}
