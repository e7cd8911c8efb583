package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkapp-dev/mkapp/internal/config"
	"github.com/mkapp-dev/mkapp/internal/fsutil"
	"github.com/mkapp-dev/mkapp/internal/manifest"
	"github.com/mkapp-dev/mkapp/internal/naming"
	"github.com/mkapp-dev/mkapp/internal/pkgmanager"
)

// TemplateDirPrefix names template directories: template-<id>.
const TemplateDirPrefix = "template-"

// renameOnCopy maps reserved template file names to their destination
// names. npm strips .gitignore from published packages, so templates ship
// it underscore-escaped.
var renameOnCopy = map[string]string{
	"_gitignore": ".gitignore",
}

// Request is a fully resolved scaffolding job.
type Request struct {
	TargetDir   string // as the user gave it, normalized
	WorkDir     string // invocation working directory
	TemplateID  string
	PackageName string // empty falls back to the directory-derived name
	Overwrite   bool   // user confirmed emptying a non-empty target
}

// Result describes what was written.
type Result struct {
	Root    string   // absolute project root
	WorkDir string
	Files   []string // top-level entries written, in copy order
}

// TemplatesRoot resolves the directory holding template-<id> trees: the
// config/env override when set, otherwise the packages directory next to
// the executable.
func TemplatesRoot() (string, error) {
	if dir := config.Get(config.KeyTemplatesDir); dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "packages"), nil
}

// Materialize writes the template into the target directory and rewrites the
// manifest name. Any failure aborts mid-write; there is no rollback.
func Materialize(req Request, templatesRoot string) (*Result, error) {
	root := req.TargetDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(req.WorkDir, req.TargetDir)
	}

	templateDir := filepath.Join(templatesRoot, TemplateDirPrefix+req.TemplateID)
	if info, err := os.Stat(templateDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("template %q not found at %s", req.TemplateID, templateDir)
	}

	// Prepare the root: confirmed overwrite empties it (keeping .git),
	// otherwise it is created along with intermediate directories.
	if req.Overwrite {
		if err := fsutil.EmptyDir(root); err != nil {
			return nil, fmt.Errorf("emptying %s: %w", root, err)
		}
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", root, err)
		}
	}

	result := &Result{Root: root, WorkDir: req.WorkDir}

	// Copy everything except the manifest, applying the rename table to
	// destination names only.
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", templateDir, err)
	}
	for _, entry := range entries {
		if entry.Name() == manifest.FileName {
			continue
		}
		dstName := entry.Name()
		if renamed, ok := renameOnCopy[dstName]; ok {
			dstName = renamed
		}
		src := filepath.Join(templateDir, entry.Name())
		dst := filepath.Join(root, dstName)
		if err := fsutil.Copy(src, dst); err != nil {
			return nil, fmt.Errorf("copying %s: %w", entry.Name(), err)
		}
		result.Files = append(result.Files, dstName)
	}

	// Rewrite the manifest name and write it last.
	obj, err := manifest.ParseFile(filepath.Join(templateDir, manifest.FileName))
	if err != nil {
		return nil, err
	}

	name := req.PackageName
	if name == "" {
		name = naming.ToValidPackageName(naming.ProjectNameFromDir(req.TargetDir, req.WorkDir))
	}
	obj.Set("name", name)

	dst := filepath.Join(root, manifest.FileName)
	if err := os.WriteFile(dst, obj.Encode(), 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}
	result.Files = append(result.Files, manifest.FileName)

	return result, nil
}

// NextSteps returns the follow-up command lines for the detected package
// manager: a cd line when the project root is not the invocation directory,
// then the install/dev pair.
func (r *Result) NextSteps(agent *pkgmanager.Agent) []string {
	var steps []string

	if r.Root != r.WorkDir {
		rel, err := filepath.Rel(r.WorkDir, r.Root)
		if err != nil {
			rel = r.Root
		}
		if strings.Contains(rel, " ") {
			rel = fmt.Sprintf("%q", rel)
		}
		steps = append(steps, "cd "+rel)
	}

	install, dev := agent.Commands()
	return append(steps, install, dev)
}
