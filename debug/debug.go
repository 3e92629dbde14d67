package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode   bool
	Manifest bool
	Patch    bool
	Eval     bool
	Geom     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("USDA_DEBUG_ENCODE")
	d.Manifest = boolEnv("USDA_DEBUG_MANIFEST")
	d.Patch = boolEnv("USDA_DEBUG_PATCH")
	d.Eval = boolEnv("USDA_DEBUG_EVAL")
	d.Geom = boolEnv("USDA_DEBUG_GEOM")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Manifest() bool {
	return d.Manifest
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func Geom() bool {
	return d.Geom
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
