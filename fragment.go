package minigrep

// Fragment is the full contents of a file held in memory for scanning.
//
// Lines returned by the scanner are substrings of Raw and share its backing
// memory, so Raw stays reachable as long as any of them is referenced.
type Fragment struct {
	// Raw is the decoded file contents.
	Raw string

	// Path is where Raw was read from.
	Path string
}

// Size returns the number of bytes in the fragment.
func (f *Fragment) Size() int {
	if f == nil {
		return 0
	}
	return len(f.Raw)
}
