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

package ioc

import (
	"github.com/ecodeclub/feedsync/config"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

// InitRestMetrics 注册在默认的 registry 上，governor 的 /metrics 会一起暴露
func InitRestMetrics() *restx.Metrics {
	return restx.NewMetrics(prometheus.DefaultRegisterer)
}

func InitBackendClient(metrics *restx.Metrics) restx.Client {
	cfg := restx.Config{Name: "backend"}
	err := econf.UnmarshalKey("backend", &cfg)
	if err != nil {
		panic(err)
	}
	return restx.NewRestyClient(cfg, metrics)
}

func InitStamper() snowflake.Stamper {
	var cfg config.SnowflakeConfig
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(err)
	}
	res, err := snowflake.NewNodeStamper(cfg.Node)
	if err != nil {
		panic(err)
	}
	return res
}
