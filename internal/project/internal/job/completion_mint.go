// Copyright 2023 leanmaker
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package job

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/leanmaker/leanmaker/internal/project/internal/service"
)

var _ ecron.NamedJob = (*CompletionMintJob)(nil)

// CompletionMintJob 定时扫描已结项的项目补铸结项流水。
// 结项流转提交后铸造失败时靠它兜底
type CompletionMintJob struct {
	svc    service.ProjectService
	logger *elog.Component
}

func NewCompletionMintJob(svc service.ProjectService) *CompletionMintJob {
	return &CompletionMintJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *CompletionMintJob) Name() string {
	return "CompletionMintJob"
}

func (j *CompletionMintJob) Run(ctx context.Context) error {
	minted, err := j.svc.MintPendingCompletions(ctx)
	if err != nil {
		return fmt.Errorf("结项工时补账失败: %w", err)
	}
	j.logger.Info("结项工时补账完成", elog.Int64("minted", minted))
	return nil
}
