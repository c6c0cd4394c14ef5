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
	"github.com/leanmaker/leanmaker/internal/evaluation/internal/service"
)

var _ ecron.NamedJob = (*RecomputeAggregatesJob)(nil)

// RecomputeAggregatesJob 定时从评价全集重算全量企业评分与学生 GPA，
// 兜住计数器漂移
type RecomputeAggregatesJob struct {
	svc    service.EvaluationService
	logger *elog.Component
}

func NewRecomputeAggregatesJob(svc service.EvaluationService) *RecomputeAggregatesJob {
	return &RecomputeAggregatesJob{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (j *RecomputeAggregatesJob) Name() string {
	return "RecomputeAggregatesJob"
}

func (j *RecomputeAggregatesJob) Run(ctx context.Context) error {
	stats, err := j.svc.RecomputeAggregates(ctx, service.RecomputeScope{})
	if err != nil {
		return fmt.Errorf("全量重算聚合失败: %w", err)
	}
	j.logger.Info("全量重算聚合完成",
		elog.Int64("companies", stats.Companies),
		elog.Int64("students", stats.Students))
	return nil
}
