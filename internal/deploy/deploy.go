// Package deploy copies the bundled rule set into a target project. The run
// is a fixed sequence of individually idempotent steps, so a failed or
// interrupted deploy is resumed by simply running it again.
package deploy

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/templates"
)

// Options controls a deploy run.
type Options struct {
	// Source is the asset tree to deploy. Nil means the embedded assets.
	Source fs.FS
	// Out receives human-readable progress lines. Nil means os.Stdout.
	Out io.Writer
	// System provides target-side filesystem operations. Nil means RealSystem.
	System System
	// Rules restricts the deploy to the named rule files (e.g. from the
	// interactive picker). Nil deploys every bundled rule.
	Rules []string
}

type deployer struct {
	target   string
	source   fs.FS
	manifest *templates.Manifest
	out      io.Writer
	sys      System
	selected map[string]bool
}

// Run deploys the rule set into target, creating it if necessary.
func Run(target string, opts Options) error {
	if target == "" {
		return errors.New(messages.DeployTargetRequired)
	}
	source := opts.Source
	if source == nil {
		source = templates.FS()
	}
	sys := opts.System
	if sys == nil {
		sys = RealSystem{}
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	manifest, err := templates.LoadManifestFS(source)
	if err != nil {
		return err
	}

	d := &deployer{
		target:   target,
		source:   source,
		manifest: manifest,
		out:      out,
		sys:      sys,
	}
	if opts.Rules != nil {
		d.selected = make(map[string]bool, len(opts.Rules))
		for _, name := range opts.Rules {
			d.selected[name] = true
		}
	}

	steps := []func() error{
		d.scaffoldTarget,
		d.ensureDirs,
		d.deployRules,
		d.mirrorDocs,
		d.ensureGitignore,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	fmt.Fprintf(d.out, messages.DeployDoneFmt, d.target)
	return nil
}

// scaffoldTarget creates the target directory when missing and seeds it with
// the default README. A pre-existing target is left exactly as found.
func (d *deployer) scaffoldTarget() error {
	info, err := d.sys.Stat(d.target)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf(messages.DeployFailedStatFmt, d.target, errors.New("not a directory"))
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.DeployFailedStatFmt, d.target, err)
	}

	if err := d.sys.MkdirAll(d.target, 0o755); err != nil {
		return fmt.Errorf(messages.DeployFailedCreateDirFmt, d.target, err)
	}
	fmt.Fprintf(d.out, messages.DeployCreatedTargetFmt, d.target)

	readme, err := fs.ReadFile(d.source, "README.md")
	if err != nil {
		return fmt.Errorf(messages.DeployFailedReadSourceFmt, "README.md", err)
	}
	readmePath := filepath.Join(d.target, "README.md")
	if err := d.sys.WriteFileAtomic(readmePath, readme, 0o644); err != nil {
		return fmt.Errorf(messages.DeployFailedWriteFmt, readmePath, err)
	}
	fmt.Fprintf(d.out, messages.DeploySeededReadmeFmt, readmePath)
	return nil
}

// ensureDirs creates the standard substructure under the target.
func (d *deployer) ensureDirs() error {
	for _, dir := range []string{d.manifest.Dirs.RulesDest, d.manifest.Dirs.AIDocsDest} {
		path := filepath.Join(d.target, filepath.FromSlash(dir))
		if _, err := d.sys.Stat(path); err == nil {
			continue
		}
		if err := d.sys.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf(messages.DeployFailedCreateDirFmt, path, err)
		}
		fmt.Fprintf(d.out, messages.DeployCreatedDirFmt, path)
	}
	return nil
}

// deployRules copies every bundled rule file into the target rules
// directory, skipping any name that already exists there. Skips preserve
// user customizations and are reported, not treated as errors.
func (d *deployer) deployRules() error {
	entries, err := fs.ReadDir(d.source, d.manifest.Dirs.RulesSource)
	if err != nil {
		return fmt.Errorf(messages.DeployFailedReadSourceFmt, d.manifest.Dirs.RulesSource, err)
	}
	destDir := filepath.Join(d.target, filepath.FromSlash(d.manifest.Dirs.RulesDest))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != templates.RuleExtension {
			continue
		}
		if d.selected != nil && !d.selected[name] {
			continue
		}
		destPath := filepath.Join(destDir, name)
		if _, err := d.sys.Stat(destPath); err == nil {
			fmt.Fprintf(d.out, messages.DeploySkippedRuleFmt, name)
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf(messages.DeployFailedStatFmt, destPath, err)
		}

		data, err := fs.ReadFile(d.source, joinSlash(d.manifest.Dirs.RulesSource, name))
		if err != nil {
			return fmt.Errorf(messages.DeployFailedReadSourceFmt, name, err)
		}
		if err := d.sys.WriteFileAtomic(destPath, data, 0o644); err != nil {
			return fmt.Errorf(messages.DeployFailedWriteFmt, destPath, err)
		}
		fmt.Fprintf(d.out, messages.DeployCopiedRuleFmt, name)
	}
	return nil
}

// mirrorDocs recursively copies the bundled docs tree into the target's docs
// directory and its .ai mirror, overwriting unconditionally. Docs are shared
// truth, unlike rules, which may be locally edited.
func (d *deployer) mirrorDocs() error {
	if _, err := fs.Stat(d.source, d.manifest.Dirs.DocsSource); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.DeployFailedReadSourceFmt, d.manifest.Dirs.DocsSource, err)
	}

	destRoots := []string{d.manifest.Dirs.DocsDest, d.manifest.Dirs.AIDocsDest}
	err := fs.WalkDir(d.source, d.manifest.Dirs.DocsSource, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(filepath.FromSlash(d.manifest.Dirs.DocsSource), filepath.FromSlash(path))
		if relErr != nil {
			return relErr
		}
		for _, destRoot := range destRoots {
			destPath := filepath.Join(d.target, filepath.FromSlash(destRoot), rel)
			if entry.IsDir() {
				if mkErr := d.sys.MkdirAll(destPath, 0o755); mkErr != nil {
					return fmt.Errorf(messages.DeployFailedCreateDirFmt, destPath, mkErr)
				}
				continue
			}
			data, readErr := fs.ReadFile(d.source, path)
			if readErr != nil {
				return fmt.Errorf(messages.DeployFailedReadSourceFmt, path, readErr)
			}
			if writeErr := d.sys.WriteFileAtomic(destPath, data, 0o644); writeErr != nil {
				return fmt.Errorf(messages.DeployFailedWriteFmt, destPath, writeErr)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf(messages.DeployFailedWalkSourceFmt, err)
	}
	for _, destRoot := range destRoots {
		fmt.Fprintf(d.out, messages.DeployMirroredDocsFmt, filepath.Join(d.target, filepath.FromSlash(destRoot)))
	}
	return nil
}

func joinSlash(dir string, name string) string {
	if dir == "." || dir == "" {
		return name
	}
	return dir + "/" + name
}
