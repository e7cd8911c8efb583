// Package prompt implements the interactive scaffolding workflow: a
// line-oriented prompter over injected reader/writer pairs, and the ordered
// question pipeline that turns command-line arguments plus user answers into
// a resolved scaffolding request. Questions are plain step functions over an
// answer accumulator; a step that returns no question is skipped.
package prompt
