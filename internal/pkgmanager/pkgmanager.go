// Package pkgmanager guesses which package manager invoked the tool from the
// npm_config_user_agent environment variable. The guess is cosmetic: it only
// tailors the printed follow-up commands.
package pkgmanager

import (
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// EnvVar is the invocation signature npm-family managers export, of the form
// "name/version ..." (e.g. "pnpm/8.15.4 npm/? node/v20.11.1 linux x64").
const EnvVar = "npm_config_user_agent"

// DefaultManager is assumed when no signature is present.
const DefaultManager = "npm"

// Agent identifies the detected package manager.
type Agent struct {
	Name    string
	Version string // raw version text from the signature

	// Semver is the parsed version, nil when the text is not semver
	// (some managers report "?" or git describe output).
	Semver *semver.Version
}

// Detect parses a user-agent signature. It returns nil when the signature is
// empty or malformed.
func Detect(userAgent string) *Agent {
	if userAgent == "" {
		return nil
	}

	spec, _, _ := strings.Cut(userAgent, " ")
	name, version, ok := strings.Cut(spec, "/")
	if !ok || name == "" {
		return nil
	}

	agent := &Agent{Name: name, Version: version}
	if v, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err == nil {
		agent.Semver = v
	}
	return agent
}

// FromEnv detects the package manager from the process environment.
func FromEnv() *Agent {
	return Detect(os.Getenv(EnvVar))
}

// Manager returns the manager name to use in printed commands, falling back
// to DefaultManager when detection failed.
func (a *Agent) Manager() string {
	if a == nil || a.Name == "" {
		return DefaultManager
	}
	return a.Name
}

// Commands returns the install and dev-server command lines for the detected
// manager. Yarn is the one special case: bare "yarn" installs.
func (a *Agent) Commands() (install, dev string) {
	pm := a.Manager()
	if pm == "yarn" {
		return "yarn", "yarn dev"
	}
	return pm + " install", pm + " run dev"
}
