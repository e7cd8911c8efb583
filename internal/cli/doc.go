// Package cli defines the Cobra command tree for the mkapp CLI. The root
// command runs the interactive scaffolding workflow; each other file in this
// package registers one subcommand (list, doctor, version) with the root.
// Command implementations delegate to internal packages for business logic
// and only handle flag parsing, I/O formatting, and user interaction.
package cli
