// Package format names the text projections the mp tool reads and
// writes on the non-binary side: text, YAML, and JSON.
package format
