// Package manifest handles the generated project's package.json. Parsing
// preserves member order so that rewriting the name field leaves every other
// field byte-stable, and an embedded JSON Schema backs the "mkapp doctor"
// template checks.
package manifest
