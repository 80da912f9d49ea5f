// Package wire defines the MessagePack wire format table: the tag
// bytes, the bit patterns of the embedded-value families, and the
// tier limits used for smallest-fit encoding.
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/encode - Encode values to wire bytes
//   - github.com/mpack-format/go-mpack/decode - Decode wire bytes to values
package wire
