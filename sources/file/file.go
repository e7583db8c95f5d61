package file

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/minigrep/minigrep"
	"github.com/minigrep/minigrep/logging"
)

// sniffLen is how many leading bytes are handed to filetype. It only needs
// the magic numbers at the start of the file.
const sniffLen = 262

// Read loads the whole file at path into a Fragment. Contents must be valid
// UTF-8. Every failure is returned as a *minigrep.ReadError.
func Read(path string) (minigrep.Fragment, error) {
	logger := logging.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return minigrep.Fragment{}, &minigrep.ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(data) {
		err := minigrep.ErrInvalidText
		if kind := detectBinary(data); kind != "" {
			err = fmt.Errorf("%w (detected %s)", minigrep.ErrInvalidText, kind)
		}
		logger.Debug().Err(err).Msg("rejecting file")
		return minigrep.Fragment{}, &minigrep.ReadError{Path: path, Err: err}
	}

	fragment := minigrep.Fragment{Raw: string(data), Path: path}
	logger.Debug().Int("bytes", fragment.Size()).Msg("loaded file")
	return fragment, nil
}

// detectBinary returns the MIME type of a recognised binary format, or the
// empty string.
func detectBinary(data []byte) string {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
