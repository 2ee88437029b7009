package lint

import (
	"fmt"
	"io"
	"slices"

	"github.com/madefor-cc/dns/internal/diff"
	"github.com/madefor-cc/dns/internal/pp"
)

const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

func writeLines(out io.Writer, prefix string, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "%s%s%s\n", prefix, line, ansiReset)
	}
}

// WriteDiff prints how the list a should be changed into the list b,
// one item per line, with colored markers.
func WriteDiff(out io.Writer, a, b []string) {
	for _, op := range diff.Opcodes(a, b) {
		switch op.Tag {
		case diff.Equal:
			writeLines(out, "  ", a[op.I1:op.I2])
		case diff.Insert:
			writeLines(out, ansiGreen+" +", b[op.J1:op.J2])
		case diff.Delete:
			writeLines(out, ansiRed+" -", a[op.I1:op.I2])
		case diff.Replace:
			writeLines(out, ansiRed+" *", a[op.I1:op.I2])
			writeLines(out, ansiGreen+" *", b[op.J1:op.J2])
		}
	}
}

// duplicates returns each name occurring more than once in the sorted list, once.
func duplicates(sorted []string) []string {
	var dups []string
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] && (len(dups) == 0 || dups[len(dups)-1] != sorted[i]) {
			dups = append(dups, sorted[i])
		}
	}
	return dups
}

// CheckOrder checks that the names are sorted and distinct. If they are
// not sorted, the diff between the names and the sorted names is written to out.
func CheckOrder(ppfmt pp.PP, out io.Writer, names []string) bool {
	valid := true

	sorted := slices.Clone(names)
	slices.Sort(sorted)

	if slices.Equal(names, sorted) {
		ppfmt.Infof(pp.EmojiSorting, "Domain list is sorted")
	} else {
		ppfmt.Noticef(pp.EmojiUserError, "Domain list is not sorted")
		WriteDiff(out, names, sorted)
		ppfmt.Hintf(pp.HintSortedOrder,
			"Entries must be kept in lexicographic order of their names; "+
				"move the entries marked with - to where the entries marked with + are")
		valid = false
	}

	for _, name := range duplicates(sorted) {
		ppfmt.Noticef(pp.EmojiUserError, "Domain %q is listed more than once", name)
		valid = false
	}

	return valid
}
