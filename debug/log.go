package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/usda/sdfpath"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

type pather interface {
	SdfPath() sdfpath.Path
}

// Logf writes a debug message. Tree objects are printed by their path and
// JSON-like values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case pather:
			args[i] = x.SdfPath().String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
