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

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.ExecuteContext(context.Background())
}

func TestRootCommand_CloneEndToEnd(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "OldProj"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(srcDir, "OldProj", "main.c"),
		[]byte("OldProj init()\n"), 0644))

	require.NoError(t, runRoot(t, srcDir, dstDir, "OldProj", "NewProj"))

	content, err := os.ReadFile(filepath.Join(dstDir, "NewProj", "main.c"))
	require.NoError(t, err)
	assert.Equal(t, "NewProj init()\n", string(content))
}

func TestRootCommand_ExistingDestinationNeedsForce(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dstDir, "stale.txt"), []byte("old"), 0644))

	err := runRoot(t, srcDir, dstDir, "a", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// With --force the stale content goes away
	require.NoError(t, runRoot(t, srcDir, dstDir, "a", "b", "--force"))
	_, err = os.Stat(filepath.Join(dstDir, "stale.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommand_PlanLeavesDestinationAlone(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("OldProj"), 0644))

	require.NoError(t, runRoot(t, "plan", srcDir, dstDir, "OldProj", "NewProj"))

	_, err := os.Stat(dstDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommand_InvalidArguments(t *testing.T) {
	err := runRoot(t, "only", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 4 arguments")
}
