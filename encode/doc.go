// Package encode serializes ir values to MessagePack wire bytes.
//
// # Usage
//
//	// Encode a tree
//	err := encode.Encode(v, w)
//
//	// Stream scalars directly
//	e := encode.NewEncoder(w)
//	e.PackArrayHeader(2)
//	e.PackInt(1)
//	e.PackString("hi")
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/ir - value representation
//   - github.com/mpack-format/go-mpack/decode - decode wire bytes to values
package encode
