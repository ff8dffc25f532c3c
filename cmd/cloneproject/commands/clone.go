package commands

import (
	"os"

	"github.com/GinoBogo/CloneProject/pkg/clone"
	"github.com/GinoBogo/CloneProject/pkg/config"
	"github.com/GinoBogo/CloneProject/pkg/log"
	"github.com/GinoBogo/CloneProject/pkg/status"
	"github.com/GinoBogo/CloneProject/pkg/text"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// CloneOpts contains shared options used by all commands
type CloneOpts struct {
	ConfigFile     string
	Force          bool
	DryRun         bool
	Async          bool
	IgnorePatterns []string
}

// BuildRequest assembles a clone request from a request file or from the
// four positional arguments: src_dir, dst_dir, and the comma-separated
// source and destination name lists
func (o *CloneOpts) BuildRequest(cmd *cobra.Command, args []string) (*config.Request, error) {
	var req *config.Request

	if o.ConfigFile != "" {
		loaded, err := config.Load(cmd.Context(), o.ConfigFile)
		if err != nil {
			return nil, errors.Errorf("loading request file: %w", err)
		}
		req = loaded
	} else {
		if len(args) != 4 {
			return nil, errors.Errorf("expected 4 arguments (src_dir dst_dir src_names dst_names), got %d", len(args))
		}
		req = &config.Request{
			SourceDir:   args[0],
			DestDir:     args[1],
			SourceNames: config.ParseNameList(args[2]),
			DestNames:   config.ParseNameList(args[3]),
		}
	}

	// Flags win over the request file
	if o.Force {
		req.Force = true
	}
	if o.DryRun {
		req.DryRun = true
	}
	req.IgnorePatterns = append(req.IgnorePatterns, o.IgnorePatterns...)

	return req, nil
}

// NewCloneCmd creates the clone command
func NewCloneCmd(opts *CloneOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <src_dir> <dst_dir> <src_names> <dst_names>",
		Short: "Clone a project tree, renaming names in paths and contents",
		Long: `Clone duplicates a directory tree while renaming every occurrence of the
source names to the destination names. It will:
1. Validate the request
2. Clear any pre-existing destination (requires --force)
3. Copy the tree depth-first, renaming path components
4. Substitute names inside text files, leaving binaries untouched
5. Print the run log and final statistics

Name lists are comma-separated and processed in order:

  cloneproject /old/proj /new/proj "companyA,projX" "companyB,projY"`,
		Args: cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := zerolog.Ctx(ctx)
			ctx = logger.WithContext(ctx)

			req, err := opts.BuildRequest(cmd, args)
			if err != nil {
				return err
			}

			console := log.New(os.Stdout, logger.GetLevel())
			console.StartClone(ctx, req.SourceDir, req.DestDir)

			cloner, err := clone.New(clone.Options{
				Request:   req,
				StatusMgr: status.New(logger),
				Replacer:  text.NewSimpleReplacer(),
				Console:   console,
			})
			if err != nil {
				return errors.Errorf("creating cloner: %w", err)
			}

			runner := clone.NewRunner(logger, opts.Async)
			stats, err := runner.Run(ctx, cloner)
			if err != nil {
				console.Errorf("clone failed: %v", err)
				return errors.Errorf("running clone: %w", err)
			}

			console.LogNewline()
			console.Infof("Directories created: %d", stats.DirsCreated)
			console.Infof("Files copied: %d", stats.FilesCopied)
			console.Infof("Names replaced: %d", stats.Replacements)
			if stats.FilesSkipped > 0 {
				console.Warningf("Files skipped: %d", stats.FilesSkipped)
			}
			if req.DryRun {
				console.Success("Dry run completed, nothing was written.")
				return nil
			}
			console.Successf("Operation completed successfully. New project location: %s", req.DestDir)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "load the clone request from a YAML or HCL file")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "overwrite an existing destination directory")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report what would happen without writing anything")
	cmd.Flags().BoolVar(&opts.Async, "async", false, "run the clone on a worker goroutine")
	cmd.Flags().StringArrayVar(&opts.IgnorePatterns, "ignore", nil, "glob pattern to skip, relative to the source root (repeatable)")

	return cmd
}
