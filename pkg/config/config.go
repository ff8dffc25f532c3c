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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GinoBogo/CloneProject/pkg/text"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for request-file parsers
type Parser interface {
	// 📝 Parse parses a clone request from bytes
	Parse(ctx context.Context, data []byte) (*Request, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Request describes one clone operation: duplicate SourceDir at
// DestDir while renaming every SourceNames[i] to DestNames[i] in path
// components and text-file contents.
type Request struct {
	SourceDir      string   `json:"source_dir" yaml:"source_dir" hcl:"source_dir"`
	DestDir        string   `json:"dest_dir" yaml:"dest_dir" hcl:"dest_dir"`
	SourceNames    []string `json:"source_names" yaml:"source_names" hcl:"source_names"`
	DestNames      []string `json:"dest_names" yaml:"dest_names" hcl:"dest_names"`
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty" hcl:"ignore_patterns,optional"`
	Force          bool     `json:"force,omitempty" yaml:"force,omitempty" hcl:"force,optional"`
	DryRun         bool     `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
}

// 🎯 Load reads, parses, and validates a clone request file
func Load(ctx context.Context, path string) (*Request, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading clone request")

	// Read request file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading request file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse request
	req, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing request: %w", err)
	}

	// Validate request
	if err := req.Validate(ctx); err != nil {
		return nil, errors.Errorf("validating request: %w", err)
	}

	return req, nil
}

// 📑 ParseNameList splits a comma-separated name list, trimming
// whitespace and dropping empty entries
func ParseNameList(names string) []string {
	if strings.TrimSpace(names) == "" {
		return nil
	}

	var out []string
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// 🔍 Validate checks that the request describes a safe, runnable clone
func (req *Request) Validate(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	if req.SourceDir == "" {
		return errors.New("source directory is required")
	}
	if req.DestDir == "" {
		return errors.New("destination directory is required")
	}
	if len(req.SourceNames) == 0 || len(req.DestNames) == 0 {
		return errors.New("at least one source and destination name is required")
	}
	if len(req.SourceNames) != len(req.DestNames) {
		return errors.Errorf("number of source names (%d) must match number of destination names (%d)",
			len(req.SourceNames), len(req.DestNames))
	}

	for i := range req.SourceNames {
		if req.SourceNames[i] == "" {
			return errors.Errorf("source name #%d cannot be empty", i+1)
		}
		if req.DestNames[i] == "" {
			return errors.Errorf("destination name #%d cannot be empty", i+1)
		}
		if req.SourceNames[i] == req.DestNames[i] {
			logger.Warn().
				Str("name", req.SourceNames[i]).
				Msgf("replacement pair #%d is identical, it will result in no change", i+1)
		}
	}

	// Normalize both ends before the relationship checks
	srcAbs, err := filepath.Abs(req.SourceDir)
	if err != nil {
		return errors.Errorf("resolving source directory: %w", err)
	}
	dstAbs, err := filepath.Abs(req.DestDir)
	if err != nil {
		return errors.Errorf("resolving destination directory: %w", err)
	}
	req.SourceDir = srcAbs
	req.DestDir = dstAbs

	info, err := os.Stat(req.SourceDir)
	if err != nil {
		return errors.Errorf("source directory %q not found: %w", req.SourceDir, err)
	}
	if !info.IsDir() {
		return errors.Errorf("source path %q is not a directory", req.SourceDir)
	}

	if req.SourceDir == req.DestDir {
		return errors.New("source and destination directories cannot be the same")
	}
	if isAncestor(req.SourceDir, req.DestDir) {
		return errors.Errorf("destination %q is inside source %q", req.DestDir, req.SourceDir)
	}
	if isAncestor(req.DestDir, req.SourceDir) {
		return errors.Errorf("source %q is inside destination %q", req.SourceDir, req.DestDir)
	}

	return nil
}

// 🧬 isAncestor reports whether child lives under parent. Both paths must
// already be absolute and cleaned.
func isAncestor(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && rel != "." &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// 🔄 Rules zips the request's name pairs into ordered replacement rules
func (req *Request) Rules() []text.Rule {
	rules := make([]text.Rule, 0, len(req.SourceNames))
	for i := range req.SourceNames {
		rules = append(rules, text.Rule{From: req.SourceNames[i], To: req.DestNames[i]})
	}
	return rules
}

// 📝 String returns a one-line summary of the request
func (req *Request) String() string {
	return fmt.Sprintf("%s -> %s (%d name pairs)", req.SourceDir, req.DestDir, len(req.SourceNames))
}
