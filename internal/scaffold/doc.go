// Package scaffold materializes a resolved template into the target
// directory: it prepares the project root, copies the template tree with the
// reserved-file rename table applied, rewrites the manifest name, and
// produces the next-step command lines. It powers the bare "mkapp" invocation.
package scaffold
