package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFormatter_FormatEntry(t *testing.T) {
	f := NewDefaultFormatter()

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "dir_created",
			entry: Entry{Source: "src", Dest: "src", Status: StatusDirCreated},
			want:  "📁 Created src",
		},
		{
			name:  "dir_renamed",
			entry: Entry{Source: "OldProj", Dest: "NewProj", Status: StatusDirCreated, Renamed: true},
			want:  "📁 Created OldProj -> NewProj",
		},
		{
			name:  "copied",
			entry: Entry{Source: "a.txt", Dest: "a.txt", Status: StatusCopied},
			want:  "✨ Copied a.txt",
		},
		{
			name:  "substituted",
			entry: Entry{Source: "main.c", Dest: "main.c", Status: StatusSubstituted, Replacements: 2},
			want:  "📝 Updated main.c (2 replacements)",
		},
		{
			name:  "binary",
			entry: Entry{Source: "logo.png", Dest: "logo.png", Status: StatusSkippedBinary},
			want:  "📦 Copied logo.png (binary, contents untouched)",
		},
		{
			name:  "removed",
			entry: Entry{Dest: "stale", Status: StatusRemoved},
			want:  "🗑️  Removed stale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatEntry(tt.entry))
		})
	}
}

func TestDefaultFormatter_FormatEntryError(t *testing.T) {
	f := NewDefaultFormatter()
	got := f.FormatEntry(Entry{Source: "locked", Status: StatusSkippedError, Err: errors.New("permission denied")})
	assert.Contains(t, got, "Skipped locked")
	assert.Contains(t, got, "permission denied")
}

func TestDefaultFormatter_FormatProgress(t *testing.T) {
	f := NewDefaultFormatter()

	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFormatter_FormatError(t *testing.T) {
	f := NewDefaultFormatter()

	assert.Equal(t, "", f.FormatError(nil))
	assert.Contains(t, f.FormatError(errors.New("boom")), "boom")
}
