package scan

import (
	"bufio"
	"io"
)

// PrintLines writes each line to w followed by a newline, with no other
// decoration.
func PrintLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
