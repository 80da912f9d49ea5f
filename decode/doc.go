// Package decode parses MessagePack wire bytes into ir values.
//
// # Usage
//
//	// Parse a single value
//	v, err := decode.Parse(data)
//
//	// Decode a stream of back-to-back values
//	dec := decode.NewDecoder(r, decode.MaxDepth(64))
//	for {
//	    v, err := dec.Decode()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/ir - value representation
//   - github.com/mpack-format/go-mpack/encode - encode values to wire bytes
//   - github.com/mpack-format/go-mpack/wire - wire format table
package decode
