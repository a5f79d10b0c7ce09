package consolesvc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/scoretable/core/input"
)

// ScannerReader reads lines from any io.Reader (pipes, files, tests).
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ input.LineReader = (*ScannerReader)(nil)

// MaxLineSize is the longest line a ScannerReader accepts.
const MaxLineSize = 16 * 1024 * 1024

// NewScannerReader reads lines from r and writes prompts to out.
func NewScannerReader(r io.Reader, out io.Writer) *ScannerReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &ScannerReader{scanner: scanner, out: out}
}

func (rdr *ScannerReader) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(rdr.out, prompt); err != nil {
		return "", errors.Wrap(err, "writing prompt")
	}
	if !rdr.scanner.Scan() {
		if err := rdr.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "scanning input")
		}
		return "", io.EOF
	}
	return rdr.scanner.Text(), nil
}
