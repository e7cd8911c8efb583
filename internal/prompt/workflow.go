package prompt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkapp-dev/mkapp/internal/catalog"
	"github.com/mkapp-dev/mkapp/internal/fsutil"
	"github.com/mkapp-dev/mkapp/internal/naming"
)

// Options carries the command-line context the workflow starts from.
type Options struct {
	TargetDir   string // positional argument, already formatted; empty asks
	Template    string // raw --template value, possibly unknown
	DefaultName string // project name offered on empty input
	WorkDir     string // invocation working directory
}

// Answers accumulates the state of the question sequence. It is created
// empty, filled question by question, and discarded after resolution.
type Answers struct {
	TargetDir     string // live working target, reformatted on each update
	NeedOverwrite bool
	Overwrite     bool
	PackageName   string
	Layout        *catalog.Layout
	Variant       *catalog.Variant
}

// Result is the resolved scaffolding request once every question settled.
type Result struct {
	TargetDir   string
	TemplateID  string
	PackageName string
	Overwrite   bool
}

// question is one suspension point: it blocks on the prompter and folds the
// answer into the accumulator.
type question struct {
	ask func(a *Answers) error
}

// step inspects the answers so far and either produces a question or skips
// by returning nil. A step may abort the whole sequence by returning an
// error (the cancellation gate).
type step func(a *Answers) (*question, error)

// Workflow drives the ordered question sequence.
type Workflow struct {
	opts Options
	p    *Prompter
}

// NewWorkflow returns a workflow asking through p.
func NewWorkflow(p *Prompter, opts Options) *Workflow {
	if opts.DefaultName == "" {
		opts.DefaultName = "my-app"
	}
	return &Workflow{opts: opts, p: p}
}

// Run evaluates every step in order, suspending on each non-skipped
// question, and returns the resolved request. A declined overwrite or an
// aborted prompt returns ErrCancelled; no filesystem mutation happens here.
func (w *Workflow) Run() (*Result, error) {
	a := &Answers{TargetDir: w.opts.TargetDir}

	steps := []step{
		w.projectName,
		w.overwriteConfirm,
		w.cancellationGate,
		w.packageName,
		w.layoutChoice,
		w.variantChoice,
	}

	for _, s := range steps {
		q, err := s(a)
		if err != nil {
			return nil, err
		}
		if q == nil {
			continue
		}
		if err := q.ask(a); err != nil {
			return nil, err
		}
	}

	return &Result{
		TargetDir:   a.TargetDir,
		TemplateID:  w.resolveTemplateID(a),
		PackageName: a.PackageName,
		Overwrite:   a.Overwrite,
	}, nil
}

// projectName asks for the target directory unless one came from the
// command line. The working target is reformatted from the raw answer so
// downstream steps always see a normalized value.
func (w *Workflow) projectName(a *Answers) (*question, error) {
	if a.TargetDir != "" {
		return nil, nil
	}
	return &question{ask: func(a *Answers) error {
		answer, err := w.p.Text("Project name:", w.opts.DefaultName)
		if err != nil {
			return err
		}
		a.TargetDir = naming.FormatTargetDir(answer)
		if a.TargetDir == "" {
			a.TargetDir = w.opts.DefaultName
		}
		return nil
	}}, nil
}

// overwriteConfirm asks before reusing a non-empty target directory.
func (w *Workflow) overwriteConfirm(a *Answers) (*question, error) {
	root := w.root(a)
	if _, err := os.Stat(root); err != nil {
		return nil, nil
	}
	empty, err := fsutil.IsEmptyDir(root)
	if err != nil {
		return nil, err
	}
	if empty {
		return nil, nil
	}

	a.NeedOverwrite = true
	return &question{ask: func(a *Answers) error {
		label := fmt.Sprintf("Target directory %q is not empty. Remove existing files and continue?", a.TargetDir)
		if a.TargetDir == "." {
			label = "Current directory is not empty. Remove existing files and continue?"
		}
		ok, err := w.p.Confirm(label, false)
		if err != nil {
			return err
		}
		a.Overwrite = ok
		return nil
	}}, nil
}

// cancellationGate aborts the sequence when the user declined to overwrite.
// It never asks anything.
func (w *Workflow) cancellationGate(a *Answers) (*question, error) {
	if a.NeedOverwrite && !a.Overwrite {
		return nil, ErrCancelled
	}
	return nil, nil
}

// packageName asks for an explicit package.json name when the one implied
// by the target directory is invalid. Invalid submissions re-prompt.
func (w *Workflow) packageName(a *Answers) (*question, error) {
	derived := naming.ProjectNameFromDir(a.TargetDir, w.opts.WorkDir)
	if naming.IsValidPackageName(derived) {
		a.PackageName = derived
		return nil, nil
	}

	return &question{ask: func(a *Answers) error {
		def := naming.ToValidPackageName(derived)
		for {
			answer, err := w.p.Text("Package name:", def)
			if err != nil {
				return err
			}
			if naming.IsValidPackageName(answer) {
				a.PackageName = answer
				return nil
			}
			fmt.Fprintf(w.p.out, "%q is not a valid package.json name.\n", answer)
		}
	}}, nil
}

// layoutChoice asks for a template family unless a known template id was
// supplied on the command line. An unrecognized id downgrades to a warning
// folded into the question text.
func (w *Workflow) layoutChoice(a *Answers) (*question, error) {
	if w.opts.Template != "" && catalog.IsTemplateID(w.opts.Template) {
		return nil, nil
	}

	return &question{ask: func(a *Answers) error {
		label := "Select a template:"
		if w.opts.Template != "" {
			label = fmt.Sprintf("%q isn't a valid template. Please choose from below:", w.opts.Template)
		}

		layouts := catalog.Layouts()
		items := make([]string, len(layouts))
		for i, l := range layouts {
			items[i] = l.Style.Render(l.Display)
		}

		idx, err := w.p.Select(label, items)
		if err != nil {
			return err
		}
		a.Layout = &layouts[idx]
		return nil
	}}, nil
}

// variantChoice asks for a styling variant when the chosen layout offers a
// real choice. A single-variant layout resolves without asking.
func (w *Workflow) variantChoice(a *Answers) (*question, error) {
	if a.Layout == nil || len(a.Layout.Variants) == 0 {
		return nil, nil
	}
	if len(a.Layout.Variants) == 1 {
		a.Variant = &a.Layout.Variants[0]
		return nil, nil
	}

	return &question{ask: func(a *Answers) error {
		variants := a.Layout.Variants
		items := make([]string, len(variants))
		for i, v := range variants {
			items[i] = v.Style.Render(v.Display)
		}

		idx, err := w.p.Select("Select a variant:", items)
		if err != nil {
			return err
		}
		a.Variant = &variants[idx]
		return nil
	}}, nil
}

// resolveTemplateID picks the effective template: the variant answer, else
// the chosen layout, else the command-line argument verbatim.
func (w *Workflow) resolveTemplateID(a *Answers) string {
	switch {
	case a.Variant != nil:
		return a.Variant.ID
	case a.Layout != nil:
		return a.Layout.ID
	default:
		return w.opts.Template
	}
}

// root resolves the live target against the invocation working directory.
func (w *Workflow) root(a *Answers) string {
	if filepath.IsAbs(a.TargetDir) {
		return a.TargetDir
	}
	return filepath.Join(w.opts.WorkDir, a.TargetDir)
}
