package commands

import (
	"fmt"
	"os"

	"github.com/GinoBogo/CloneProject/pkg/clone"
	"github.com/GinoBogo/CloneProject/pkg/log"
	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/GinoBogo/CloneProject/pkg/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates the plan command
func NewPlanCmd(opts *CloneOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <src_dir> <dst_dir> <src_names> <dst_names>",
		Short: "Preview a clone without writing anything",
		Long: `Plan walks the source tree and reports what a clone would do:
which directories get created, which files get renamed, where contents
would be substituted, and which files are skipped as binary.
The destination is never touched.`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)
			ctx = logger.WithContext(ctx)

			req, err := opts.BuildRequest(cmd, args)
			if err != nil {
				return err
			}
			req.DryRun = true

			console := log.New(os.Stdout, logger.GetLevel())
			console.Header(fmt.Sprintf("plan for %s", req.String()))

			mgr := status.New(logger)
			cloner, err := clone.New(clone.Options{
				Request:   req,
				StatusMgr: mgr,
				Replacer:  text.NewSimpleReplacer(),
				Console:   console,
			})
			if err != nil {
				return errors.Errorf("creating cloner: %w", err)
			}

			stats, err := cloner.Execute(ctx)
			if err != nil {
				return errors.Errorf("planning clone: %w", err)
			}

			console.LogNewline()
			console.Infof("Would create %d directories and copy %d files (%d replacements).",
				stats.DirsCreated, stats.FilesCopied, stats.Replacements)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "load the clone request from a YAML or HCL file")
	cmd.Flags().StringArrayVar(&opts.IgnorePatterns, "ignore", nil, "glob pattern to skip, relative to the source root (repeatable)")

	return cmd
}
