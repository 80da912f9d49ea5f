// Package ir is the value representation shared by the encoder and
// decoder: a closed tagged union of the MessagePack kinds with
// checked, error-returning access.
//
// # Usage
//
//	v := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	age, err := ir.Get(v, "age").Int()
//
// # Related Packages
//
//   - github.com/mpack-format/go-mpack/encode - Encode values to wire bytes
//   - github.com/mpack-format/go-mpack/decode - Decode wire bytes to values
package ir
