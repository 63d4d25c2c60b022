package templates

import (
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"

	"github.com/fenwick-labs/rulekit/internal/messages"
)

// Manifest describes how the embedded assets map onto a target project.
type Manifest struct {
	SchemaVersion int           `toml:"schema_version"`
	Dirs          ManifestDirs  `toml:"dirs"`
	Gitignore     GitignoreSpec `toml:"gitignore"`
}

// ManifestDirs names the source directories inside the asset tree and the
// destination directories inside a target project.
type ManifestDirs struct {
	RulesSource string `toml:"rules_source"`
	DocsSource  string `toml:"docs_source"`
	RulesDest   string `toml:"rules_dest"`
	DocsDest    string `toml:"docs_dest"`
	AIDocsDest  string `toml:"ai_docs_dest"`
}

// GitignoreSpec holds the marker lines the deployer keeps present in the
// target's .gitignore, and the comment header written above them.
type GitignoreSpec struct {
	Header  string   `toml:"header"`
	Markers []string `toml:"markers"`
}

// LoadManifest parses and validates the embedded manifest.
func LoadManifest() (*Manifest, error) {
	return LoadManifestFS(FS())
}

// LoadManifestFS parses and validates the manifest found in an arbitrary
// asset tree, e.g. one substituted in tests.
func LoadManifestFS(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, manifestName)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadErrFmt, manifestName, err)
	}
	var manifest Manifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf(messages.TemplatesManifestParseErrFmt, err)
	}
	if err := manifest.validate(fsys); err != nil {
		return nil, err
	}
	return &manifest, nil
}

func (m *Manifest) validate(fsys fs.FS) error {
	if m.Dirs.RulesSource == "" {
		return fmt.Errorf(messages.TemplatesManifestPathErrFmt, "(empty)")
	}
	if info, err := fs.Stat(fsys, m.Dirs.RulesSource); err != nil || !info.IsDir() {
		return fmt.Errorf(messages.TemplatesManifestPathErrFmt, m.Dirs.RulesSource)
	}
	if m.Dirs.DocsSource == "" {
		return fmt.Errorf(messages.TemplatesManifestPathErrFmt, "(empty)")
	}
	if m.Dirs.RulesDest == "" || m.Dirs.DocsDest == "" || m.Dirs.AIDocsDest == "" {
		return fmt.Errorf(messages.TemplatesManifestPathErrFmt, "(empty destination)")
	}
	if len(m.Gitignore.Markers) == 0 {
		return fmt.Errorf(messages.TemplatesManifestPathErrFmt, "gitignore markers")
	}
	return nil
}
