package main

import (
	"os"

	"github.com/GinoBogo/CloneProject/cmd/cloneproject/commands"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Flags
	debug bool
)

// newRootCmd builds the cloneproject command tree. The root command runs
// the clone itself so the common case stays a single invocation:
//
//	cloneproject <src_dir> <dst_dir> <src_names> <dst_names>
func newRootCmd() *cobra.Command {
	opts := &commands.CloneOpts{}

	cmd := commands.NewCloneCmd(opts)
	cmd.Use = "cloneproject <src_dir> <dst_dir> <src_names> <dst_names>"
	cmd.Short = "Clone a project tree, renaming names in paths and contents"
	cmd.SilenceUsage = true

	addRootFlags(cmd)
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging()
	}

	cmd.AddCommand(commands.NewPlanCmd(opts))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
