package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Diff   bool
	Patch  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("MPACK_DEBUG_DECODE")
	d.Diff = boolEnv("MPACK_DEBUG_DIFF")
	d.Patch = boolEnv("MPACK_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
