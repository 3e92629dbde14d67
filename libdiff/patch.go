package libdiff

import (
	"errors"
	"fmt"
	"slices"
)

var ErrPatch = errors.New("cannot patch")

// Patch applies edits to from. Equal and deleted lines must match from.
func Patch(from []string, edits []Edit) ([]string, error) {
	res := make([]string, 0, len(from))
	fi := 0
	for _, e := range edits {
		switch e.Op {
		case Insert:
			res = append(res, e.Lines...)
			continue
		case Equal, Delete:
			n := len(e.Lines)
			if fi+n > len(from) || !slices.Equal(from[fi:fi+n], e.Lines) {
				return nil, fmt.Errorf("%w: unexpected text at line %d, expected %q", ErrPatch, fi+1, e.Lines[0])
			}
			if e.Op == Equal {
				res = append(res, e.Lines...)
			}
			fi += n
		}
	}
	if fi != len(from) {
		return nil, fmt.Errorf("%w: %d trailing lines not covered", ErrPatch, len(from)-fi)
	}
	return res, nil
}

// Reverse returns edits turning the result of edits back into its input.
func Reverse(edits []Edit) []Edit {
	res := make([]Edit, len(edits))
	for i, e := range edits {
		switch e.Op {
		case Insert:
			e.Op = Delete
		case Delete:
			e.Op = Insert
		}
		res[i] = e
	}
	return res
}
