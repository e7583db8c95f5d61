package scan

import (
	"io"

	"github.com/minigrep/minigrep"
	"github.com/minigrep/minigrep/logging"
	"github.com/minigrep/minigrep/sources/file"
)

// Pipeline runs one search: load the file named by Config, scan it and
// print the matching lines to Out.
type Pipeline struct {
	Config minigrep.Config

	// Out receives matched lines. Nothing is written if loading fails.
	Out io.Writer

	// read loads the target file. Defaults to file.Read.
	read func(path string) (minigrep.Fragment, error)
}

func NewPipeline(cfg minigrep.Config, out io.Writer) *Pipeline {
	return &Pipeline{
		Config: cfg,
		Out:    out,
		read:   file.Read,
	}
}

// Run executes the pipeline. Errors from loading the file are returned
// unmodified.
func (p *Pipeline) Run() error {
	read := p.read
	if read == nil {
		read = file.Read
	}

	fragment, err := read(p.Config.Path)
	if err != nil {
		return err
	}

	matches := p.Scan(fragment)
	logging.Debug().
		Str("path", fragment.Path).
		Bool("case_sensitive", p.Config.CaseSensitive).
		Int("matches", len(matches)).
		Msg("scan complete")

	return PrintLines(p.Out, matches)
}

// Scan returns the lines of fragment matching the configured query.
func (p *Pipeline) Scan(fragment minigrep.Fragment) []string {
	return SearchFor(p.Config.CaseSensitive)(p.Config.Query, fragment.Raw)
}

// Run searches the file named by cfg and prints the matching lines to w.
func Run(cfg minigrep.Config, w io.Writer) error {
	return NewPipeline(cfg, w).Run()
}
