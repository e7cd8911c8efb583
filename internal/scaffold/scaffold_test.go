package scaffold

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/mkapp-dev/mkapp/internal/pkgmanager"
)

const templateManifest = `{
  "name": "template-html-css",
  "private": true,
  "version": "0.0.0",
  "scripts": {
    "dev": "vite",
    "build": "vite build"
  }
}
`

// newTemplatesRoot lays out packages/template-html-css with a manifest, a
// nested asset, and the underscore-escaped gitignore.
func newTemplatesRoot(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "packages")
	dir := filepath.Join(root, "template-html-css")

	files := map[string]string{
		"package.json":    templateManifest,
		"index.html":      "<!doctype html>",
		"_gitignore":      "node_modules\ndist\n",
		"css/style.css":   "body { margin: 0 }",
		"public/logo.svg": "<svg/>",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestMaterializeFreshDirectory(t *testing.T) {
	templates := newTemplatesRoot(t)
	work := t.TempDir()

	res, err := Materialize(Request{
		TargetDir:  "demo",
		WorkDir:    work,
		TemplateID: "html-css",
	}, templates)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	root := filepath.Join(work, "demo")
	if res.Root != root {
		t.Errorf("Root = %q, want %q", res.Root, root)
	}

	// Template files copied verbatim, dotfile renamed, manifest rewritten.
	if got := readFile(t, filepath.Join(root, "index.html")); got != "<!doctype html>" {
		t.Errorf("index.html = %q", got)
	}
	if got := readFile(t, filepath.Join(root, ".gitignore")); got != "node_modules\ndist\n" {
		t.Errorf(".gitignore = %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "_gitignore")); !os.IsNotExist(err) {
		t.Error("_gitignore should not exist under its reserved name")
	}
	if got := readFile(t, filepath.Join(root, "css", "style.css")); got != "body { margin: 0 }" {
		t.Errorf("css/style.css = %q", got)
	}

	// Manifest: only the name changed, order and style intact.
	want := strings.Replace(templateManifest, `"template-html-css"`, `"demo"`, 1)
	if got := readFile(t, filepath.Join(root, "package.json")); got != want {
		t.Errorf("package.json =\n%s\nwant:\n%s", got, want)
	}
}

func TestMaterializeExplicitPackageName(t *testing.T) {
	templates := newTemplatesRoot(t)
	work := t.TempDir()

	_, err := Materialize(Request{
		TargetDir:   "My App",
		WorkDir:     work,
		TemplateID:  "html-css",
		PackageName: "custom-name",
	}, templates)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	got := readFile(t, filepath.Join(work, "My App", "package.json"))
	if !strings.Contains(got, `"name": "custom-name"`) {
		t.Errorf("manifest name not rewritten: %s", got)
	}
}

func TestMaterializeDerivedNameFallback(t *testing.T) {
	templates := newTemplatesRoot(t)
	work := t.TempDir()

	_, err := Materialize(Request{
		TargetDir:  "My App",
		WorkDir:    work,
		TemplateID: "html-css",
	}, templates)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	got := readFile(t, filepath.Join(work, "My App", "package.json"))
	if !strings.Contains(got, `"name": "my-app"`) {
		t.Errorf("manifest should fall back to sanitized dir name: %s", got)
	}
}

func TestMaterializeOverwritePreservesGit(t *testing.T) {
	templates := newTemplatesRoot(t)
	work := t.TempDir()
	root := filepath.Join(work, "demo")

	if err := os.MkdirAll(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".git", "HEAD"), []byte("ref"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "stale.txt"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Materialize(Request{
		TargetDir:  "demo",
		WorkDir:    work,
		TemplateID: "html-css",
		Overwrite:  true,
	}, templates)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "stale.txt")); !os.IsNotExist(err) {
		t.Error("stale file should have been removed")
	}
	if got := readFile(t, filepath.Join(root, ".git", "HEAD")); got != "ref" {
		t.Errorf(".git content damaged: %q", got)
	}
	if _, err := os.Stat(filepath.Join(root, "index.html")); err != nil {
		t.Errorf("template not copied after overwrite: %v", err)
	}
}

func TestMaterializeMissingTemplate(t *testing.T) {
	templates := newTemplatesRoot(t)

	_, err := Materialize(Request{
		TargetDir:  "demo",
		WorkDir:    t.TempDir(),
		TemplateID: "nonexistent-id",
	}, templates)
	if err == nil {
		t.Fatal("Materialize() with unknown template should fail")
	}
	if !strings.Contains(err.Error(), "nonexistent-id") {
		t.Errorf("error should name the template: %v", err)
	}
}

func TestMaterializeMalformedManifest(t *testing.T) {
	templates := newTemplatesRoot(t)
	bad := filepath.Join(templates, "template-html-css", "package.json")
	if err := os.WriteFile(bad, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Materialize(Request{
		TargetDir:  "demo",
		WorkDir:    t.TempDir(),
		TemplateID: "html-css",
	}, templates)
	if err == nil {
		t.Fatal("Materialize() with malformed manifest should fail")
	}
}

func TestNextSteps(t *testing.T) {
	t.Run("separate directory", func(t *testing.T) {
		r := &Result{Root: "/work/demo", WorkDir: "/work"}
		got := r.NextSteps(nil)
		want := []string{"cd demo", "npm install", "npm run dev"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NextSteps() = %v, want %v", got, want)
		}
	})

	t.Run("current directory omits cd", func(t *testing.T) {
		r := &Result{Root: "/work", WorkDir: "/work"}
		got := r.NextSteps(&pkgmanager.Agent{Name: "pnpm"})
		want := []string{"pnpm install", "pnpm run dev"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NextSteps() = %v, want %v", got, want)
		}
	})

	t.Run("spaced path is quoted", func(t *testing.T) {
		r := &Result{Root: "/work/My App", WorkDir: "/work"}
		got := r.NextSteps(nil)
		if got[0] != `cd "My App"` {
			t.Errorf("cd line = %q, want quoted path", got[0])
		}
	})

	t.Run("yarn pair", func(t *testing.T) {
		r := &Result{Root: "/work/demo", WorkDir: "/work"}
		got := r.NextSteps(&pkgmanager.Agent{Name: "yarn"})
		want := []string{"cd demo", "yarn", "yarn dev"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NextSteps() = %v, want %v", got, want)
		}
	})
}
