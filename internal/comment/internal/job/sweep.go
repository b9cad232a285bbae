// Copyright 2023 ecodeclub
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
	"time"

	"github.com/ecodeclub/feedsync/internal/comment/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// SweepIdleThreadsJob 丢弃长时间没有访问的评论区，草稿也一起丢弃
type SweepIdleThreadsJob struct {
	svc    service.Service
	idle   time.Duration
	logger *elog.Component
}

func NewSweepIdleThreadsJob(svc service.Service, idle time.Duration) *SweepIdleThreadsJob {
	return &SweepIdleThreadsJob{
		svc:    svc,
		idle:   idle,
		logger: elog.DefaultLogger,
	}
}

func (j *SweepIdleThreadsJob) Name() string {
	return "SweepIdleCommentThreadsJob"
}

func (j *SweepIdleThreadsJob) Run(ctx context.Context) error {
	cnt := j.svc.SweepIdle(j.idle)
	if cnt > 0 {
		j.logger.Info("丢弃空闲的评论区", elog.Int("count", cnt))
	}
	return nil
}
