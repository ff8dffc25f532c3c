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

package clone

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/GinoBogo/CloneProject/pkg/config"
	"github.com/GinoBogo/CloneProject/pkg/log"
	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/GinoBogo/CloneProject/pkg/text"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// 🚫 ErrInvalidRequest marks a malformed request; the clone never starts
	ErrInvalidRequest = errors.New("invalid clone request")

	// 🚫 ErrDestinationPrep marks a fatal failure clearing or creating the
	// destination; the clone aborts before any copying
	ErrDestinationPrep = errors.New("preparing destination")
)

// 🎯 Operation defines something the runner can execute
type Operation interface {
	// Execute runs the operation and returns the run statistics
	Execute(ctx context.Context) (*status.Stats, error)
}

// 🔧 Options contains configuration for the cloner
type Options struct {
	// Request is the validated clone request
	Request *config.Request
	// StatusMgr performs file operations and keeps the run log
	StatusMgr *status.Manager
	// Replacer applies the ordered name rules
	Replacer text.Replacer
	// Console is the optional user-facing logger for per-step lines
	Console *log.Logger
}

// 🏭 New creates a new cloner with the given options
func New(opts Options) (*Cloner, error) {
	if opts.Request == nil {
		return nil, errors.Errorf("request is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	if opts.Replacer == nil {
		return nil, errors.Errorf("replacer is required")
	}
	return &Cloner{
		req:      opts.Request,
		status:   opts.StatusMgr,
		replacer: opts.Replacer,
		console:  opts.Console,
	}, nil
}

// 🎮 Cloner produces a renamed copy of a source tree at a destination
// path, substituting names in path components and text-file contents
type Cloner struct {
	req      *config.Request
	status   *status.Manager
	replacer text.Replacer
	console  *log.Logger

	rules     []text.Rule
	processed int
}

// 🏃 Execute runs the full clone: validate, prepare the destination, then
// a single depth-first pass over the source tree
func (c *Cloner) Execute(ctx context.Context) (*status.Stats, error) {
	logger := zerolog.Ctx(ctx)

	// Validate the request
	if err := c.req.Validate(ctx); err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	c.rules = c.req.Rules()
	if err := c.replacer.ValidateRules(c.rules); err != nil {
		return nil, errors.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	// Log the replacement plan
	if c.console != nil {
		c.console.LogPlan(ctx, c.req.SourceNames, c.req.DestNames)
	}
	logger.Info().
		Strs("source_names", c.req.SourceNames).
		Strs("dest_names", c.req.DestNames).
		Bool("dry_run", c.req.DryRun).
		Msg("starting clone")

	// Prepare the destination
	if err := c.prepareDestination(ctx); err != nil {
		return nil, err
	}

	// Size the walk up front so progress has a total
	total := c.countEntries(ctx)
	c.status.StartOperation(ctx, total)
	defer c.status.FinishOperation(ctx)

	// Recursive descent. A failed entry is logged and skipped; only the
	// root enumeration is fatal.
	if err := c.cloneDir(ctx, c.req.SourceDir, c.req.DestDir, ".", "."); err != nil {
		return nil, errors.Errorf("walking source tree: %w", err)
	}

	stats := c.status.Stats()
	return &stats, nil
}

// 🧹 prepareDestination clears a pre-existing destination and creates a
// fresh directory. Destructive and irreversible: the caller owns the
// overwrite confirmation, expressed here as Request.Force.
func (c *Cloner) prepareDestination(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	exists, err := c.status.FileExists(ctx, c.req.DestDir)
	if err != nil {
		return errors.Errorf("%w: %w", ErrDestinationPrep, err)
	}

	if exists {
		// A dry run only reports that the destination would be cleared
		if c.req.DryRun {
			c.track(ctx, status.Entry{
				Dest:   ".",
				Status: status.StatusRemoved,
			})
			return nil
		}

		if !c.req.Force {
			return errors.Errorf("%w: destination %q already exists; re-run with force to overwrite",
				ErrDestinationPrep, c.req.DestDir)
		}
		if c.console != nil {
			c.console.Warningf("destination %q already exists, overwriting", c.req.DestDir)
		}
		logger.Warn().Str("dest", c.req.DestDir).Msg("destination exists, clearing")

		if err := c.status.RemoveAll(ctx, c.req.DestDir); err != nil {
			return errors.Errorf("%w: %w", ErrDestinationPrep, err)
		}
		// Run-log paths are root-relative; "." is the destination root
		c.track(ctx, status.Entry{
			Dest:   ".",
			Status: status.StatusRemoved,
		})
	}

	if c.req.DryRun {
		return nil
	}

	if err := c.status.CreateDir(ctx, c.req.DestDir); err != nil {
		return errors.Errorf("%w: %w", ErrDestinationPrep, err)
	}
	return nil
}

// 📏 countEntries sizes the source tree for progress reporting. Errors
// are ignored here; the real walk deals with them entry by entry.
func (c *Cloner) countEntries(ctx context.Context) int {
	total := 0
	_ = filepath.WalkDir(c.req.SourceDir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if p == c.req.SourceDir {
			return nil
		}
		rel, relErr := filepath.Rel(c.req.SourceDir, p)
		if relErr == nil && c.shouldIgnore(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		total++
		return nil
	})
	return total
}

// 🌲 cloneDir copies one directory level and recurses into subdirectories.
// Entries are processed in lexicographic order so runs are reproducible.
func (c *Cloner) cloneDir(ctx context.Context, srcDir, dstDir, relSrcDir, relDstDir string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.Errorf("reading directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		relSrc := path.Join(relSrcDir, name)

		if c.shouldIgnore(relSrc) {
			zerolog.Ctx(ctx).Debug().Str("path", relSrc).Msg("ignored by pattern")
			continue
		}

		// Substitution applies to the base name only, never across a
		// path separator
		newName := text.ReplaceName(name, c.rules)
		renamed := newName != name

		srcPath := filepath.Join(srcDir, name)
		dstPath := filepath.Join(dstDir, newName)
		relDst := path.Join(relDstDir, newName)

		if entry.IsDir() {
			c.cloneSubdir(ctx, srcPath, dstPath, relSrc, relDst, renamed)
		} else {
			c.cloneFile(ctx, srcPath, dstPath, relSrc, relDst, renamed)
		}

		c.processed++
		c.status.UpdateProgress(ctx, c.processed)
	}

	return nil
}

// 📁 cloneSubdir creates one destination directory and recurses into it.
// Failures are contained: the subtree is skipped, siblings continue.
func (c *Cloner) cloneSubdir(ctx context.Context, srcPath, dstPath, relSrc, relDst string, renamed bool) {
	if !c.req.DryRun {
		if err := c.status.CreateDir(ctx, dstPath); err != nil {
			c.track(ctx, status.Entry{
				Source: relSrc,
				Dest:   relDst,
				Status: status.StatusSkippedError,
				Err:    err,
			})
			return
		}
	}

	c.track(ctx, status.Entry{
		Source:  relSrc,
		Dest:    relDst,
		Status:  status.StatusDirCreated,
		Renamed: renamed,
	})

	if err := c.cloneDir(ctx, srcPath, dstPath, relSrc, relDst); err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
	}
}

// 📄 cloneFile copies one file raw, then substitutes its contents when
// the copy classifies as text. Failures are logged and the file skipped.
func (c *Cloner) cloneFile(ctx context.Context, srcPath, dstPath, relSrc, relDst string, renamed bool) {
	logger := zerolog.Ctx(ctx)

	if c.req.DryRun {
		c.previewFile(ctx, srcPath, relSrc, relDst, renamed)
		return
	}

	// Raw byte copy first, so binaries are correct even before
	// classification
	if err := c.status.CopyFile(ctx, srcPath, dstPath); err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}

	// Classify the destination copy
	isBinary, err := text.DetectFile(dstPath)
	if err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}
	if isBinary {
		c.track(ctx, status.Entry{
			Source:  relSrc,
			Dest:    relDst,
			Status:  status.StatusSkippedBinary,
			Renamed: renamed,
		})
		return
	}

	// Text file: rewrite the copy with substituted content
	content, err := c.status.ReadFile(ctx, dstPath)
	if err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}

	result, err := c.replacer.Replace(ctx, bytes.NewReader(content), c.rules)
	if err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}

	if !result.WasModified {
		c.track(ctx, status.Entry{
			Source:  relSrc,
			Dest:    relDst,
			Status:  status.StatusCopied,
			Renamed: renamed,
		})
		return
	}

	if err := c.status.WriteFileAtomic(ctx, dstPath, result.ModifiedContent); err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}

	logger.Debug().
		Str("file", relDst).
		Ints("per_rule", result.PerRule).
		Int("total", result.ReplacementCount).
		Msg("replacement breakdown")

	c.track(ctx, status.Entry{
		Source:       relSrc,
		Dest:         relDst,
		Status:       status.StatusSubstituted,
		Renamed:      renamed,
		Replacements: result.ReplacementCount,
	})
}

// 🔮 previewFile classifies the source file and records what a real run
// would do, without touching the destination
func (c *Cloner) previewFile(ctx context.Context, srcPath, relSrc, relDst string, renamed bool) {
	isBinary, err := text.DetectFile(srcPath)
	if err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}
	if isBinary {
		c.track(ctx, status.Entry{
			Source:  relSrc,
			Dest:    relDst,
			Status:  status.StatusSkippedBinary,
			Renamed: renamed,
		})
		return
	}

	content, err := c.status.ReadFile(ctx, srcPath)
	if err != nil {
		c.track(ctx, status.Entry{
			Source: relSrc,
			Dest:   relDst,
			Status: status.StatusSkippedError,
			Err:    err,
		})
		return
	}

	result, err := c.replacer.Replace(ctx, bytes.NewReader(content), c.rules)
	if err != nil || !result.WasModified {
		c.track(ctx, status.Entry{
			Source:  relSrc,
			Dest:    relDst,
			Status:  status.StatusCopied,
			Renamed: renamed,
		})
		return
	}

	c.track(ctx, status.Entry{
		Source:       relSrc,
		Dest:         relDst,
		Status:       status.StatusSubstituted,
		Renamed:      renamed,
		Replacements: result.ReplacementCount,
	})
}

// 📝 track records an entry and mirrors it to the console when one is
// attached
func (c *Cloner) track(ctx context.Context, entry status.Entry) {
	c.status.Track(ctx, entry)
	if c.console != nil {
		c.console.LogEntry(ctx, entry)
	}
}

// 🔍 shouldIgnore checks the slash-form relative path against the
// request's ignore patterns
func (c *Cloner) shouldIgnore(relPath string) bool {
	if len(c.req.IgnorePatterns) == 0 {
		return false
	}

	for _, pattern := range c.req.IgnorePatterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}

	return false
}
