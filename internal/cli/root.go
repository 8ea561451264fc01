// Package cli implements the mediaplayer command line: an optional media
// path followed by the desktop window.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/mediaplayer/internal/log"
)

// Application identity
const (
	AppID   = "com.ytget.mediaplayer"
	AppName = "mediaplayer"
)

// RunFunc starts the player, optionally loading path first. It blocks until
// the window closes.
type RunFunc func(ctx context.Context, path string) error

// NewRootCommand builds the root command. run is invoked with the single
// optional positional argument.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:     AppName + " [path-to-media-file]",
		Short:   "A desktop media player built on GStreamer",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), path)
		},
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\n", AppName))
	return cmd
}

// Execute configures logging, runs the root command and returns the process
// exit code.
func Execute(ctx context.Context, version string, args []string, stderr io.Writer) int {
	log.Configure(log.Config{Version: version})

	cmd := NewRootCommand(version, RunPlayer)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		log.WithComponent("cli").Error().Err(err).Msg("mediaplayer failed")
		return 1
	}
	return 0
}
