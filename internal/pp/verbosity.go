package pp

// Verbosity is the type of message levels.
type Verbosity int

// Pre-defined verbosity levels.
const (
	Info   Verbosity = iota // progress and suggestions
	Notice                  // lint failures and anything else the user must see

	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)
