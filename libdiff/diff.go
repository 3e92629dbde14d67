// Package libdiff computes line diffs between two renderings of a stage.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "equal"
	}
}

// Mark is the unified diff prefix of o.
func (o Op) Mark() byte {
	switch o {
	case Insert:
		return '+'
	case Delete:
		return '-'
	default:
		return ' '
	}
}

// Edit is a run of lines sharing one operation.
type Edit struct {
	Op    Op
	Lines []string
}

// Lines diffs two line slices. Lines are compared whole; an empty result
// means the inputs are equal and empty.
func Lines(from, to []string) []Edit {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(from), joinLines(to))
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		lines := splitLines(d.Text)
		if len(lines) == 0 {
			continue
		}
		if n := len(res); n > 0 && res[n-1].Op == op {
			res[n-1].Lines = append(res[n-1].Lines, lines...)
			continue
		}
		res = append(res, Edit{Op: op, Lines: lines})
	}
	return res
}

// Changed reports whether any edit inserts or deletes.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != Equal {
			return true
		}
	}
	return false
}

func joinLines(lines []string) string {
	var b strings.Builder
	for _, ln := range lines {
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
