package text

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// detectSampleSize bounds how much of a file the classifier reads
const detectSampleSize = 8192

// IsBinary classifies a content sample as binary. A sample is binary when
// it contains a NUL byte or does not decode as UTF-8. The heuristic
// favors skipping over corrupting: a misclassified text file gets copied
// verbatim, which is always recoverable.
func IsBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}

	if bytes.IndexByte(sample, 0x00) >= 0 {
		return true
	}

	// A bounded sample can end mid-rune. Trim back to the last complete
	// rune boundary before checking validity.
	if len(sample) == detectSampleSize {
		for i := 0; i < utf8.UTFMax && len(sample) > 0; i++ {
			if r, _ := utf8.DecodeLastRune(sample); r != utf8.RuneError {
				break
			}
			sample = sample[:len(sample)-1]
		}
	}

	return !utf8.Valid(sample)
}

// DetectFile reports whether the file at path looks binary, reading at
// most detectSampleSize bytes.
func DetectFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Errorf("opening file for detection: %w", err)
	}
	defer f.Close()

	sample := make([]byte, detectSampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, errors.Errorf("sampling file: %w", err)
	}

	return IsBinary(sample[:n]), nil
}
