// Copyright 2026 Gino Bogo
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 45 // Base width for the source path
	destWidth  = 45 // Width for the destination path
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatEntry formats a run-log entry for display
func (l *Logger) formatEntry(entry status.Entry) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch entry.Status {
	case status.StatusSkippedError:
		symbol = '✗'
		symbolColor = color.FgRed
	case status.StatusSubstituted:
		symbol = '⟳'
		symbolColor = color.FgBlue
	case status.StatusSkippedBinary:
		symbol = '-'
		symbolColor = color.FgYellow
	case status.StatusDirCreated:
		symbol = '•'
		symbolColor = color.FgCyan
	default:
		symbol = '✓'
		symbolColor = color.FgGreen
	}

	dest := entry.Dest
	if !entry.Renamed {
		dest = ""
	}

	detail := entry.Status.String()
	if entry.Replacements > 0 {
		detail = fmt.Sprintf("%s (%d)", detail, entry.Replacements)
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, entry.Source),
		fmt.Sprintf("%-*s", destWidth, dest),
		detail)
}

// 📝 LogEntry logs a run-log entry
func (l *Logger) LogEntry(ctx context.Context, entry status.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Format and print
	fmt.Fprintln(l.console, l.formatEntry(entry))

	// Log to zerolog
	l.zlog.Info().
		Str("source", entry.Source).
		Str("dest", entry.Dest).
		Str("status", entry.Status.String()).
		Bool("renamed", entry.Renamed).
		Int("replacements", entry.Replacements).
		Msg("clone step")
}

// 📝 StartClone prints the header for a clone run
func (l *Logger) StartClone(ctx context.Context, source, dest string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "[cloning %s]\n",
		color.New(color.FgCyan).Sprint(source))

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(source),
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(dest))

	l.zlog.Info().
		Str("source", source).
		Str("dest", dest).
		Msg("starting clone")
}

// 📝 LogPlan prints the numbered replacement plan
func (l *Logger) LogPlan(ctx context.Context, sourceNames, destNames []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, "Replacement plan:")
	for i := range sourceNames {
		fmt.Fprintf(l.console, "  %d. %s → %s\n",
			i+1,
			color.New(color.FgYellow).Sprintf("%q", sourceNames[i]),
			color.New(color.FgGreen).Sprintf("%q", destNames[i]))
	}
	if len(sourceNames) > 1 {
		fmt.Fprintln(l.console, "Note: replacements are processed in order, be careful with overlapping patterns.")
	}

	l.zlog.Info().
		Strs("source_names", sourceNames).
		Strs("dest_names", destNames).
		Msg("replacement plan")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := color.New(color.Bold, color.FgCyan).Sprint("cloneproject")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Success.WithWriter(l.console).Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Warning.WithWriter(l.console).Println(msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Error.WithWriter(l.console).Println(msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pterm.Info.WithWriter(l.console).Println(msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
