package status

import (
	"fmt"
)

// Formatter defines how run-log entries and progress should be formatted
type Formatter interface {
	// FormatEntry formats a single run-log entry
	FormatEntry(entry Entry) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter provides a default implementation of Formatter
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatEntry formats a run-log entry with emojis
func (f *DefaultFormatter) FormatEntry(entry Entry) string {
	renamed := ""
	if entry.Renamed {
		renamed = fmt.Sprintf(" -> %s", entry.Dest)
	}

	switch entry.Status {
	case StatusDirCreated:
		return fmt.Sprintf("📁 Created %s%s", entry.Source, renamed)
	case StatusCopied:
		return fmt.Sprintf("✨ Copied %s%s", entry.Source, renamed)
	case StatusSubstituted:
		return fmt.Sprintf("📝 Updated %s%s (%d replacements)", entry.Source, renamed, entry.Replacements)
	case StatusSkippedBinary:
		return fmt.Sprintf("📦 Copied %s%s (binary, contents untouched)", entry.Source, renamed)
	case StatusSkippedError:
		return fmt.Sprintf("⚠️  Skipped %s (%v)", entry.Source, entry.Err)
	case StatusRemoved:
		return fmt.Sprintf("🗑️  Removed %s", entry.Dest)
	default:
		return fmt.Sprintf("❓ %s", entry.Source)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
