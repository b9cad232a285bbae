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

package article

import (
	"github.com/ecodeclub/feedsync/internal/article/internal/repository"
	"github.com/ecodeclub/feedsync/internal/article/internal/service"
	"github.com/ecodeclub/feedsync/internal/article/internal/store"
	"github.com/ecodeclub/feedsync/internal/article/internal/web"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/feedsync/internal/moderation"
	"github.com/ecodeclub/feedsync/internal/notification"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
	"github.com/ecodeclub/feedsync/internal/pkg/snowflake"
	"github.com/google/wire"
)

func InitModule(client restx.Client,
	stamper snowflake.Stamper,
	idtModule *identity.Module,
	modModule *moderation.Module,
	ntfModule *notification.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*identity.Module), "Svc"),
		wire.FieldsOf(new(*moderation.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Svc"),
		repository.NewBackendItemRepository,
		store.NewViews,
		service.NewService,
		web.NewHandler,
		initViewConfig,
		initSweepJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
