// Package doctor inspects a deployed target project without modifying it.
package doctor

import (
	"io/fs"

	"github.com/fenwick-labs/rulekit/internal/templates"
)

// Status is the outcome of a single check.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something worth attention but not broken.
	StatusWarn
	// StatusFail means the check found a problem that needs fixing.
	StatusFail
)

// Result is the outcome of one check against the target.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// Options controls a doctor run.
type Options struct {
	// Source is the asset tree to compare against. Nil means the embedded assets.
	Source fs.FS
	// DiffMaxLines caps per-rule drift previews. Zero means DefaultDiffMaxLines.
	DiffMaxLines int
}

// Run executes all checks against the target root and returns their results.
func Run(root string, opts Options) ([]Result, error) {
	source := opts.Source
	if source == nil {
		source = templates.FS()
	}
	manifest, err := templates.LoadManifestFS(source)
	if err != nil {
		return nil, err
	}

	var results []Result
	results = append(results, CheckStructure(root, manifest)...)
	results = append(results, CheckGitignore(root, manifest)...)
	results = append(results, CheckDrift(root, source, manifest, opts.DiffMaxLines)...)
	return results, nil
}

// HasFailure reports whether any result failed.
func HasFailure(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}
