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
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/walteh/ubackup/cmd/ubackup/opts"
	"github.com/walteh/ubackup/pkg/log"
)

func main() {
	o := &opts.RootOpts{Fs: afero.NewOsFs()}

	rootCmd := newRootCmd(o)
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		logger := o.Logger
		if logger == nil {
			logger = log.New(os.Stderr, zerolog.Nop())
		}
		logger.Fatal(err)
	}

	closeLogFile()

	if err != nil {
		os.Exit(1)
	}
}
