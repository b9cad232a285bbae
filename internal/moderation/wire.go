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

//go:build wireinject

package moderation

import (
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/google/wire"
)

func InitModule(metrics *restx.Metrics) *Module {
	wire.Build(
		initConfig,
		initService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
