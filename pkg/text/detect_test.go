package text

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name   string
		sample []byte
		want   bool
	}{
		{
			name:   "plain_ascii",
			sample: []byte("int main(void) { return 0; }\n"),
			want:   false,
		},
		{
			name:   "utf8_text",
			sample: []byte("héllo wörld — ユニコード\n"),
			want:   false,
		},
		{
			name:   "empty",
			sample: nil,
			want:   false,
		},
		{
			name:   "null_byte",
			sample: []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01},
			want:   true,
		},
		{
			name:   "invalid_utf8",
			sample: []byte{0xff, 0xfe, 0xc1, 0x80},
			want:   true,
		},
		{
			name: "png_header",
			// PNG magic followed by a chunk header
			sample: []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x00},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBinary(tt.sample))
		})
	}
}

func TestIsBinary_TruncatedRuneAtSampleBoundary(t *testing.T) {
	// A sample cut in the middle of a multi-byte rune must still read as
	// text: only the trailing partial rune gets trimmed.
	sample := bytes.Repeat([]byte{'a'}, detectSampleSize-1)
	sample = append(sample, 0xe3) // first byte of a 3-byte rune

	assert.False(t, IsBinary(sample))
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "main.c")
	require.NoError(t, os.WriteFile(textPath, []byte("OldProj init()\n"), 0644))

	binPath := filepath.Join(dir, "logo.png")
	require.NoError(t, os.WriteFile(binPath, []byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}, 0644))

	isBin, err := DetectFile(textPath)
	require.NoError(t, err)
	assert.False(t, isBin)

	isBin, err = DetectFile(binPath)
	require.NoError(t, err)
	assert.True(t, isBin)

	_, err = DetectFile(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
