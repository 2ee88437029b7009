package pp

// Hint is the identifier of a hint.
type Hint int

// All the registered hints.
const (
	HintSortedOrder Hint = iota
	HintCNAMEShape
)
