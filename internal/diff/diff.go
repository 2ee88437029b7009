// Package diff aligns two sequences along a longest common subsequence.
package diff

// Tag describes how a segment of the first sequence turns into the second.
type Tag int

const (
	Equal   Tag = iota // a[I1:I2] == b[J1:J2]
	Insert             // b[J1:J2] should be inserted at a[I1:I1]
	Delete             // a[I1:I2] should be deleted
	Replace            // a[I1:I2] should be replaced by b[J1:J2]
)

// Describe gives the name of the tag.
func (t Tag) Describe() string {
	switch t {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Op is one segment of an alignment.
type Op struct {
	Tag    Tag
	I1, I2 int // range in the first sequence
	J1, J2 int // range in the second sequence
}

// lcsTable computes table[i][j], the length of a longest common subsequence of a[i:] and b[j:].
func lcsTable[T comparable](a, b []T) [][]int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}

	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			switch {
			case a[i] == b[j]:
				table[i][j] = table[i+1][j+1] + 1
			case table[i+1][j] >= table[i][j+1]:
				table[i][j] = table[i+1][j]
			default:
				table[i][j] = table[i][j+1]
			}
		}
	}

	return table
}

// Opcodes computes the segments turning a into b. The segments cover both
// sequences from start to end without gaps, and the Equal segments together
// form a longest common subsequence. A run of differences containing both
// deletions and insertions is reported as a single Replace.
func Opcodes[T comparable](a, b []T) []Op {
	table := lcsTable(a, b)

	var ops []Op
	emit := func(tag Tag, i1, i2, j1, j2 int) {
		if i1 == i2 && j1 == j2 {
			return
		}
		ops = append(ops, Op{Tag: tag, I1: i1, I2: i2, J1: j1, J2: j2})
	}

	i, j := 0, 0
	for i < len(a) || j < len(b) {
		// a maximal run of matching elements
		i1, j1 := i, j
		for i < len(a) && j < len(b) && a[i] == b[j] {
			i++
			j++
		}
		emit(Equal, i1, i, j1, j)

		// a maximal run of mismatching elements
		i1, j1 = i, j
		for i < len(a) || j < len(b) {
			if i < len(a) && j < len(b) && a[i] == b[j] {
				break
			}
			if j == len(b) || (i < len(a) && table[i+1][j] >= table[i][j+1]) {
				i++
			} else {
				j++
			}
		}
		switch {
		case i1 == i:
			emit(Insert, i1, i, j1, j)
		case j1 == j:
			emit(Delete, i1, i, j1, j)
		default:
			emit(Replace, i1, i, j1, j)
		}
	}

	return ops
}
