// Package render writes decoded values as indented text, optionally
// in color, for inspection by the mp tool.
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/ir - value representation
//   - github.com/mpack-format/go-mpack/decode - decode wire bytes to values
package render
