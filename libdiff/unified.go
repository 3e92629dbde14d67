package libdiff

import (
	"fmt"
	"strings"
)

// Unified renders edits as a unified diff with context lines around each
// change. It returns "" when nothing changed.
func Unified(fromName, toName string, edits []Edit, context int) string {
	if !Changed(edits) {
		return ""
	}
	type line struct {
		op   Op
		text string
	}
	var all []line
	for _, e := range edits {
		for _, ln := range e.Lines {
			all = append(all, line{e.Op, ln})
		}
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "--- %s\n+++ %s\n", fromName, toName)
	// fl and tl count lines consumed from each side before all[i].
	fl, tl := 0, 0
	i := 0
	for i < len(all) {
		if all[i].op == Equal {
			fl++
			tl++
			i++
			continue
		}
		start := max(0, i-context)
		hf, ht := fl-(i-start), tl-(i-start)
		end := i
		for end < len(all) {
			if all[end].op != Equal {
				end++
				continue
			}
			run := end
			for run < len(all) && all[run].op == Equal {
				run++
			}
			if run == len(all) || run-end > 2*context {
				end = min(run, end+context)
				break
			}
			end = run
		}
		var body []string
		nf, nt := 0, 0
		for _, ln := range all[start:end] {
			body = append(body, string(ln.op.Mark())+ln.text)
			if ln.op != Insert {
				nf++
			}
			if ln.op != Delete {
				nt++
			}
		}
		fmt.Fprintf(b, "@@ -%s +%s @@\n", hunkRange(hf, nf), hunkRange(ht, nt))
		for _, ln := range body {
			b.WriteString(ln)
			b.WriteByte('\n')
		}
		for _, ln := range all[i:end] {
			if ln.op != Insert {
				fl++
			}
			if ln.op != Delete {
				tl++
			}
		}
		i = end
	}
	return b.String()
}

func hunkRange(start, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", start)
	}
	if n == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	return fmt.Sprintf("%d,%d", start+1, n)
}
