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
	"context"

	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes clone operations
type Runner struct {
	logger *zerolog.Logger
	async  bool
}

// 🏗️ NewRunner creates a new runner. With async set, the walk happens off
// the caller's goroutine so an interactive front end stays responsive;
// the walk itself is still a single sequential pass.
func NewRunner(logger *zerolog.Logger, async bool) *Runner {
	return &Runner{
		logger: logger,
		async:  async,
	}
}

// 🏃 Run executes an operation
func (r *Runner) Run(ctx context.Context, op Operation) (*status.Stats, error) {
	if r.async {
		return r.runAsync(ctx, op)
	}
	return r.runSync(ctx, op)
}

// 🔄 runSync runs an operation on the caller's goroutine
func (r *Runner) runSync(ctx context.Context, op Operation) (*status.Stats, error) {
	return op.Execute(ctx)
}

// ⚡ runAsync runs an operation on a worker goroutine. Cancellation is
// only observed between the start and the end of the whole walk; a run
// already in flight finishes its pass.
func (r *Runner) runAsync(ctx context.Context, op Operation) (*status.Stats, error) {
	var stats *status.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := op.Execute(gctx)
		if err != nil {
			return errors.Errorf("executing operation: %w", err)
		}
		stats = s
		return nil
	})

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Errorf("operation cancelled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return nil, err
		}
		return stats, nil
	}
}
