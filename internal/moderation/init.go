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

package moderation

import (
	"time"

	"github.com/ecodeclub/feedsync/internal/moderation/internal/service"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/gotomicro/ego/core/econf"
)

type Cfg struct {
	BaseURL string `yaml:"baseURL"`
	// 文字审核很快，图片审核要等比较久
	TextTimeout  time.Duration       `yaml:"textTimeout"`
	ImageTimeout time.Duration       `yaml:"imageTimeout"`
	Retry        service.RetryConfig `yaml:"retry"`
}

func initConfig() Cfg {
	cfg := Cfg{
		TextTimeout:  10 * time.Second,
		ImageTimeout: 90 * time.Second,
		Retry: service.RetryConfig{
			Interval:    500 * time.Millisecond,
			MaxInterval: 4 * time.Second,
			MaxRetries:  3,
		},
	}
	err := econf.UnmarshalKey("moderation", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initService(cfg Cfg, metrics *restx.Metrics) Service {
	client := restx.NewRestyClient(restx.Config{
		Name:    "moderation",
		BaseURL: cfg.BaseURL,
	}, metrics)
	return service.NewRemoteService(client, cfg.TextTimeout, cfg.ImageTimeout, cfg.Retry)
}
