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

package operation

import (
	"context"

	"github.com/walteh/ubackup/pkg/log"
)

// 🔍 StatusOperation lists the staged files without copying them
type StatusOperation struct {
	BaseOperation
}

// 🔍 NewStatusOperation creates a new status operation
func NewStatusOperation(opts Options) *StatusOperation {
	return &StatusOperation{
		BaseOperation: NewBaseOperation(opts),
	}
}

// 🏃 Execute prints one line per staged file and a summary
func (op *StatusOperation) Execute(ctx context.Context) error {
	for _, it := range op.Plan.Items {
		op.Logger.LogFileOperation(ctx, log.FileOperation{
			Path:    it.Destination,
			Source:  it.Source,
			Section: it.Section,
			Status:  it.Status,
			Err:     it.Err,
		})
	}

	if len(op.Plan.Items) == 0 {
		op.Logger.Success("Everything is up to date.")
		return nil
	}
	op.Logger.Infof("%d files to back up, %d up to date, %d filtered out.",
		len(op.Plan.Items), op.Plan.UpToDate, op.Plan.Filtered)
	return nil
}
