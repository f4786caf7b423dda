// Copyright 2025 walteh LLC
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
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/ubackup/cmd/ubackup/commands"
	"github.com/walteh/ubackup/cmd/ubackup/opts"
	"github.com/walteh/ubackup/pkg/log"
)

// defaultLogFile is used when --log is given without a file name
const defaultLogFile = "log.txt"

// logFile is the open --log target, closed by main
var logFile afero.File

// newRootCmd builds the command tree. Running ubackup without a subcommand
// performs a backup.
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ubackup",
		Short: "Back up files described by a configuration file",
		Long: `ubackup copies files into a backup tree according to a small INI-like
configuration file. Only files whose backup copy is missing or has a different
modification time are copied.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupOutput(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Run(cmd.Context(), o)
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewPlanCmd(o),
		commands.NewDumpCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default ./configuration.ini, then the XDG config dirs)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&o.LogFile, "log", "l", "", "append all output to a log file")
	cmd.PersistentFlags().Lookup("log").NoOptDefVal = defaultLogFile
}

// setupOutput opens the log file, configures zerolog and stores the console
// logger on the command context
func setupOutput(cmd *cobra.Command, o *opts.RootOpts) error {
	var console io.Writer = cmd.OutOrStdout()
	var structured io.Writer = os.Stderr

	if o.LogFile != "" {
		f, err := o.Fs.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Errorf("opening log file: %w", err)
		}
		logFile = f
		console = f
		structured = f
		color.NoColor = true
	}

	o.Progress = o.LogFile == "" && isTerminal(console)

	zlog := setupLogging(structured, o.Debug)
	o.Logger = log.New(console, zlog)

	if o.LogFile != "" {
		o.Logger.Plain("Log opened.")
	}

	cmd.SetContext(zlog.WithContext(cmd.Context()))

	return nil
}

// setupLogging configures zerolog based on flags. Without --debug nothing is
// logged beyond the console lines.
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color.NoColor,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	_ = logFile.Close()
	logFile = nil
}
