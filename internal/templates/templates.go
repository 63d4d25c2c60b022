// Package templates embeds the deployable asset tree: the Cursor rule
// documents, the reference docs, the README seed, and the gitignore block,
// plus a manifest describing how they map onto a target project.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/fenwick-labs/rulekit/internal/messages"
)

//go:embed all:assets
var assetsFS embed.FS

// RuleExtension is the file extension of deployable rule documents.
const RuleExtension = ".mdc"

const manifestName = "manifest.toml"

// FS returns the embedded asset tree rooted at the assets directory.
func FS() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// The assets directory is compiled into the binary; a failure here
		// means the embed directive itself is broken.
		panic(err)
	}
	return sub
}

// Read returns the contents of the named asset, relative to the asset root.
func Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(FS(), name)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadErrFmt, name, err)
	}
	return data, nil
}

// Rule is one deployable rule document.
type Rule struct {
	// Name is the rule's basename without the extension.
	Name string
	// File is the rule's filename within the rules asset directory.
	File string
	// Description comes from the rule's front matter.
	Description string
	// Body is the rule content without front matter.
	Body string
}

// Private reports whether the rule follows the underscore-prefixed private
// naming convention (excluded from version control by the gitignore markers).
func (r Rule) Private() bool {
	return strings.HasPrefix(r.File, "_")
}

// Rules returns all bundled rule documents sorted by filename.
func Rules() ([]Rule, error) {
	manifest, err := LoadManifest()
	if err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(FS(), manifest.Dirs.RulesSource)
	if err != nil {
		return nil, fmt.Errorf(messages.TemplatesReadErrFmt, manifest.Dirs.RulesSource, err)
	}

	rules := make([]Rule, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != RuleExtension {
			continue
		}
		data, err := Read(path.Join(manifest.Dirs.RulesSource, entry.Name()))
		if err != nil {
			return nil, err
		}
		description, body, err := splitFrontMatter(entry.Name(), string(data))
		if err != nil {
			return nil, err
		}
		rules = append(rules, Rule{
			Name:        strings.TrimSuffix(entry.Name(), RuleExtension),
			File:        entry.Name(),
			Description: description,
			Body:        body,
		})
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].File < rules[j].File })
	return rules, nil
}

// splitFrontMatter extracts the description field from a rule's front matter
// and returns it together with the remaining body. Rules without front matter
// are returned whole with an empty description.
func splitFrontMatter(name string, content string) (string, string, error) {
	if !strings.HasPrefix(content, "---\n") {
		return "", content, nil
	}
	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return "", "", fmt.Errorf(messages.TemplatesRuleFrontMatterFmt, name)
	}
	header := rest[:end]
	body := strings.TrimPrefix(rest[end+len("\n---\n"):], "\n")

	description := ""
	for _, line := range strings.Split(header, "\n") {
		if value, ok := strings.CutPrefix(line, "description:"); ok {
			description = strings.TrimSpace(value)
			break
		}
	}
	return description, body, nil
}
