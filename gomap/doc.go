// Package gomap converts between ir values and native Go value trees
// (the nil/bool/number/string/[]any/map[string]any shapes produced by
// JSON and YAML unmarshalling).
//
// # Usage
//
//	// Native to IR
//	v, err := gomap.ToIR(map[string]any{"name": "alice", "age": 30})
//
//	// IR to native
//	x, err := gomap.FromIR(v)
//
// Struct mapping is deliberately out of scope; only value trees are
// handled.
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/ir - value representation
package gomap
