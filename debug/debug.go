package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Build   bool
	Mutate  bool
	Resolve bool
	Encode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Build = boolEnv("FLATTREE_DEBUG_BUILD")
	d.Mutate = boolEnv("FLATTREE_DEBUG_MUTATE")
	d.Resolve = boolEnv("FLATTREE_DEBUG_RESOLVE")
	d.Encode = boolEnv("FLATTREE_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Build() bool {
	return d.Build
}
func Mutate() bool {
	return d.Mutate
}
func Resolve() bool {
	return d.Resolve
}
func Encode() bool {
	return d.Encode
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}
