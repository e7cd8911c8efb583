// Package naming holds the pure string helpers for target directories and
// package.json names: normalization of user-supplied paths, validation
// against the npm name grammar, and best-effort sanitization of arbitrary
// strings into valid names.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// packageNamePattern is the npm package name grammar: an optional @scope/
// prefix followed by the package segment. Dash and tilde are legal as the
// first character of the unscoped segment only.
var packageNamePattern = regexp.MustCompile(`^(?:@[a-z\d\-*~][a-z\d\-*._~]*/)?[a-z\d\-~][a-z\d\-._~]*$`)

var (
	whitespaceRun        = regexp.MustCompile(`\s+`)
	leadingDotUnderscore = regexp.MustCompile(`^[._]`)
	invalidRun           = regexp.MustCompile(`[^a-z\d\-~]+`)
)

// FormatTargetDir trims surrounding whitespace and strips any run of
// trailing path separators. Empty input is returned unchanged. Idempotent.
func FormatTargetDir(dir string) string {
	return strings.TrimRight(strings.TrimSpace(dir), "/")
}

// IsValidPackageName reports whether name is a valid package.json name.
func IsValidPackageName(name string) bool {
	return packageNamePattern.MatchString(name)
}

// ToValidPackageName derives a valid package.json name from an arbitrary
// string: trim, lowercase, whitespace runs become a single dash, a single
// leading dot or underscore is dropped, and every run of remaining invalid
// characters collapses to a single dash. Idempotent.
func ToValidPackageName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = whitespaceRun.ReplaceAllString(name, "-")
	name = leadingDotUnderscore.ReplaceAllString(name, "")
	return invalidRun.ReplaceAllString(name, "-")
}

// ProjectNameFromDir derives the implied project name from a target
// directory: the directory's base name, or the base name of workDir when the
// target is the current directory.
func ProjectNameFromDir(targetDir, workDir string) string {
	if targetDir == "." {
		return filepath.Base(workDir)
	}
	return filepath.Base(targetDir)
}
