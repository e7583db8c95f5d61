package minigrep

// MinArgs is the number of elements NewConfig needs: program name, query and
// path.
const MinArgs = 3

// Config holds everything a single search run needs.
type Config struct {
	// Query is the literal text searched for in each line.
	Query string

	// Path is the file whose contents are searched.
	Path string

	// CaseSensitive selects exact matching when true and case-folded
	// matching when false.
	CaseSensitive bool
}

// NewConfig builds a Config from positional arguments laid out like os.Args:
// args[0] is the program name, args[1] the query and args[2] the path. Extra
// elements are ignored.
//
// Query and Path share memory with args; no copy is made. The
// case-sensitivity policy is resolved by the caller, so NewConfig never reads
// the environment.
func NewConfig(args []string, caseSensitive bool) (Config, error) {
	if len(args) < MinArgs {
		return Config{}, &ArgsError{Got: len(args), Want: MinArgs}
	}

	return Config{
		Query:         args[1],
		Path:          args[2],
		CaseSensitive: caseSensitive,
	}, nil
}
