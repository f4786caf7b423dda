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
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walteh/ubackup/cmd/ubackup/opts"
)

// NewDumpCmd creates a new dump command
func NewDumpCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		render   bool
		validate bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the parsed configuration",
		Long: `Dump parses the configuration file and prints the resulting model as YAML.
With --render the model is printed back in configuration file syntax instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.LoadConfig(cmd.Context(), validate)
			if err != nil {
				return err
			}

			if render {
				_, err := fmt.Fprint(opts.Logger.Console(), cfg.Render())
				return err
			}
			return writeDump(opts, cfg)
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "print configuration file syntax instead of YAML")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate sections before printing")

	return cmd
}
