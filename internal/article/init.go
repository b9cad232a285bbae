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

package article

import (
	"time"

	"github.com/ecodeclub/feedsync/internal/article/internal/job"
	"github.com/ecodeclub/feedsync/internal/article/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

type ViewConfig struct {
	// IdleTTL 列表超过这个时间没有访问就丢弃
	IdleTTL time.Duration `yaml:"idleTTL"`
}

func initViewConfig() ViewConfig {
	cfg := ViewConfig{IdleTTL: 30 * time.Minute}
	err := econf.UnmarshalKey("view", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initSweepJob(svc service.Service, cfg ViewConfig) *job.SweepIdleViewsJob {
	return job.NewSweepIdleViewsJob(svc, cfg.IdleTTL)
}
