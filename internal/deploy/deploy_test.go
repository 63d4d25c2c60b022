package deploy

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const testManifest = `schema_version = 1

[dirs]
rules_source = "rules"
docs_source = "docs"
rules_dest = ".cursor/rules"
docs_dest = "docs"
ai_docs_dest = ".ai/docs"

[gitignore]
header = "# rulekit: private rules and generated AI context"
markers = [
	".cursor/rules/_*.mdc",
	".ai/",
]
`

func testSource(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"manifest.toml":      {Data: []byte(testManifest)},
		"README.md":          {Data: []byte("# Cursor Rules Project\n\nseeded\n")},
		"gitignore.block":    {Data: []byte("# rulekit: private rules and generated AI context\n.cursor/rules/_*.mdc\n.ai/\n")},
		"rules/000-core.mdc": {Data: []byte("---\ndescription: core\n---\n\ncore body\n")},
		"rules/_local.mdc":   {Data: []byte("---\ndescription: local\n---\n\nlocal body\n")},
		"rules/notes.txt":    {Data: []byte("not a rule\n")},
		"docs/blueprint.md":  {Data: []byte("# Blueprint\n")},
		"docs/guides/a.md":   {Data: []byte("guide a\n")},
	}
}

func runDeploy(t *testing.T, target string, source fstest.MapFS, rules []string) string {
	t.Helper()
	var out bytes.Buffer
	err := Run(target, Options{Source: source, Out: &out, Rules: rules})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return out.String()
}

func TestRunCreatesMissingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	runDeploy(t, target, testSource(t), nil)

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	if err != nil {
		t.Fatalf("read README: %v", err)
	}
	if !strings.HasPrefix(string(readme), "# Cursor Rules Project") {
		t.Fatalf("unexpected README content: %q", string(readme))
	}
	for _, dir := range []string{".cursor/rules", ".ai/docs", "docs"} {
		info, err := os.Stat(filepath.Join(target, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
	for _, rule := range []string{"000-core.mdc", "_local.mdc"} {
		if _, err := os.Stat(filepath.Join(target, ".cursor", "rules", rule)); err != nil {
			t.Fatalf("expected deployed rule %s: %v", rule, err)
		}
	}
	if _, err := os.Stat(filepath.Join(target, ".cursor", "rules", "notes.txt")); err == nil {
		t.Fatalf("non-rule file should not be deployed")
	}
}

func TestRunDoesNotSeedReadmeInExistingTarget(t *testing.T) {
	target := t.TempDir()
	runDeploy(t, target, testSource(t), nil)

	if _, err := os.Stat(filepath.Join(target, "README.md")); err == nil {
		t.Fatalf("README must only be seeded when the target is newly created")
	}
}

func TestRunPreservesCustomizedRules(t *testing.T) {
	target := t.TempDir()
	rulesDir := filepath.Join(target, ".cursor", "rules")
	if err := os.MkdirAll(rulesDir, 0o755); err != nil {
		t.Fatalf("mkdir rules: %v", err)
	}
	custom := "my customized rule\n"
	if err := os.WriteFile(filepath.Join(rulesDir, "000-core.mdc"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write custom rule: %v", err)
	}

	out := runDeploy(t, target, testSource(t), nil)

	data, err := os.ReadFile(filepath.Join(rulesDir, "000-core.mdc"))
	if err != nil {
		t.Fatalf("read rule: %v", err)
	}
	if string(data) != custom {
		t.Fatalf("customized rule was overwritten: %q", string(data))
	}
	if !strings.Contains(out, "Skipped rule 000-core.mdc") {
		t.Fatalf("expected skip notice in output, got %q", out)
	}
}

func TestRunOverwritesDocs(t *testing.T) {
	target := t.TempDir()
	docsDir := filepath.Join(target, "docs")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		t.Fatalf("mkdir docs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(docsDir, "blueprint.md"), []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("write stale doc: %v", err)
	}

	runDeploy(t, target, testSource(t), nil)

	for _, root := range []string{"docs", ".ai/docs"} {
		data, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(root), "blueprint.md"))
		if err != nil {
			t.Fatalf("read %s/blueprint.md: %v", root, err)
		}
		if string(data) != "# Blueprint\n" {
			t.Fatalf("expected %s/blueprint.md to be mirrored, got %q", root, string(data))
		}
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(root), "guides", "a.md")); err != nil {
			t.Fatalf("expected nested doc under %s: %v", root, err)
		}
	}
}

func TestRunWithoutDocsTree(t *testing.T) {
	source := testSource(t)
	for name := range source {
		if strings.HasPrefix(name, "docs/") {
			delete(source, name)
		}
	}
	target := t.TempDir()
	runDeploy(t, target, source, nil)

	entries, err := os.ReadDir(filepath.Join(target, "docs"))
	if err == nil && len(entries) > 0 {
		t.Fatalf("expected no deployed docs, got %d entries", len(entries))
	}
}

func TestRunIsIdempotent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	runDeploy(t, target, testSource(t), nil)
	runDeploy(t, target, testSource(t), nil)

	gitignore, err := os.ReadFile(filepath.Join(target, ".gitignore"))
	if err != nil {
		t.Fatalf("read gitignore: %v", err)
	}
	for _, marker := range []string{".cursor/rules/_*.mdc", ".ai/"} {
		if got := strings.Count(string(gitignore), marker+"\n"); got != 1 {
			t.Fatalf("expected exactly one occurrence of %q, got %d in %q", marker, got, string(gitignore))
		}
	}
}

func TestRunRespectsRuleSelection(t *testing.T) {
	target := t.TempDir()
	runDeploy(t, target, testSource(t), []string{"000-core.mdc"})

	if _, err := os.Stat(filepath.Join(target, ".cursor", "rules", "000-core.mdc")); err != nil {
		t.Fatalf("expected selected rule to deploy: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, ".cursor", "rules", "_local.mdc")); err == nil {
		t.Fatalf("unselected rule should not deploy")
	}
}

func TestRunRequiresTarget(t *testing.T) {
	if err := Run("", Options{Source: testSource(t), Out: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for empty target")
	}
}

func TestRunRejectsFileTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "file")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := Run(target, Options{Source: testSource(t), Out: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error when target is a file")
	}
}

func TestRunWithEmbeddedAssets(t *testing.T) {
	target := filepath.Join(t.TempDir(), "demo")
	var out bytes.Buffer
	if err := Run(target, Options{Out: &out}); err != nil {
		t.Fatalf("Run with embedded assets: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(target, ".cursor", "rules"))
	if err != nil {
		t.Fatalf("read rules dir: %v", err)
	}
	found := false
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".mdc" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected embedded rules to deploy")
	}
}
