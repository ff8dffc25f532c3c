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
	"bytes"
	"context"
	"testing"

	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, zerolog.Disabled), &buf
}

func TestLogger_LogEntry(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name  string
		entry status.Entry
		want  []string
	}{
		{
			name: "copied_file",
			entry: status.Entry{
				Source: "sub/a.txt",
				Dest:   "sub/a.txt",
				Status: status.StatusCopied,
			},
			want: []string{"✓", "sub/a.txt", "copied"},
		},
		{
			name: "substituted_with_rename",
			entry: status.Entry{
				Source:       "OldProj/main.c",
				Dest:         "NewProj/main.c",
				Status:       status.StatusSubstituted,
				Renamed:      true,
				Replacements: 2,
			},
			want: []string{"⟳", "OldProj/main.c", "NewProj/main.c", "substituted (2)"},
		},
		{
			name: "binary_skip",
			entry: status.Entry{
				Source: "logo.png",
				Dest:   "logo.png",
				Status: status.StatusSkippedBinary,
			},
			want: []string{"-", "logo.png", "skipped binary"},
		},
		{
			name: "error_skip",
			entry: status.Entry{
				Source: "locked.txt",
				Status: status.StatusSkippedError,
			},
			want: []string{"✗", "locked.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger()
			logger.LogEntry(context.Background(), tt.entry)

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestLogger_StartClone(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	logger, buf := newTestLogger()
	logger.StartClone(context.Background(), "/old/proj", "/new/proj")

	assert.Contains(t, buf.String(), "[cloning /old/proj]")
	assert.Contains(t, buf.String(), "/new/proj")
}

func TestLogger_LogPlan(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	logger, buf := newTestLogger()
	logger.LogPlan(context.Background(), []string{"A", "B"}, []string{"X", "Y"})

	out := buf.String()
	assert.Contains(t, out, "Replacement plan:")
	assert.Contains(t, out, `1. "A" → "X"`)
	assert.Contains(t, out, `2. "B" → "Y"`)
	assert.Contains(t, out, "processed in order")
}

func TestLogger_LogPlanSinglePairNoCaveat(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	logger, buf := newTestLogger()
	logger.LogPlan(context.Background(), []string{"A"}, []string{"X"})

	assert.NotContains(t, buf.String(), "processed in order")
}

func TestLogger_Messages(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	logger, buf := newTestLogger()
	logger.Info("info message")
	logger.Warningf("warning %s", "test")
	logger.Error("error message")
	logger.Successf("success %s", "test")

	out := buf.String()
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warning test")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "success test")
}

func TestLogger_Context(t *testing.T) {
	logger, _ := newTestLogger()
	ctx := NewContext(context.Background(), logger)

	require.Equal(t, logger, FromContext(ctx))

	assert.Panics(t, func() {
		FromContext(context.Background())
	})
}
