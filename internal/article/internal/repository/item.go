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

package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/feedsync/internal/article/internal/domain"
	"github.com/ecodeclub/feedsync/internal/pkg/restx"
)

//go:generate mockgen -source=./item.go -destination=../../mocks/item_repo.mock.go -package=articlemocks ItemRepository
type ItemRepository interface {
	List(ctx context.Context, feed domain.Feed) ([]domain.Item, error)
	Get(ctx context.Context, kind domain.Kind, id string) (domain.Item, error)
	// Like 后端切换 userID 的点赞状态
	Like(ctx context.Context, kind domain.Kind, id, userID string) error
	Delete(ctx context.Context, kind domain.Kind, id string) error
	Edit(ctx context.Context, kind domain.Kind, id string, e domain.Edit) error
}

var _ ItemRepository = (*BackendItemRepository)(nil)

// BackendItemRepository 数据都在后端，这里只负责转换
type BackendItemRepository struct {
	client restx.Client
}

func NewBackendItemRepository(client restx.Client) ItemRepository {
	return &BackendItemRepository{client: client}
}

func (r *BackendItemRepository) List(ctx context.Context, feed domain.Feed) ([]domain.Item, error) {
	query := map[string]string{}
	if feed.Scope != domain.ScopeGlobal {
		query["scope"] = string(feed.Scope)
		query["scopeId"] = feed.ScopeID
	}
	var res []itemDTO
	err := r.client.Service(feed.Kind.Resource()).Find(ctx, query, &res)
	if err != nil {
		return nil, fmt.Errorf("获取列表失败 %s/%s/%s: %w", feed.Kind, feed.Scope, feed.ScopeID, err)
	}
	return toDomains(feed.Kind, res), nil
}

func (r *BackendItemRepository) Get(ctx context.Context, kind domain.Kind, id string) (domain.Item, error) {
	var res itemDTO
	err := r.client.Service(kind.Resource()).Get(ctx, id, &res)
	if err != nil {
		return domain.Item{}, err
	}
	return res.toDomain(kind), nil
}

func (r *BackendItemRepository) Like(ctx context.Context, kind domain.Kind, id, userID string) error {
	return r.client.Service(restx.Path(kind.Resource(), id, "like")).
		Patch(ctx, "", likeReq{UserID: userID}, nil)
}

func (r *BackendItemRepository) Delete(ctx context.Context, kind domain.Kind, id string) error {
	return r.client.Service(kind.Resource()).Remove(ctx, id, nil)
}

func (r *BackendItemRepository) Edit(ctx context.Context, kind domain.Kind, id string, e domain.Edit) error {
	return r.client.Service(kind.Resource()).Patch(ctx, id, editReq{
		Content: e.Content,
		Scope:   e.Scope,
		HashTag: e.HashTags,
	}, nil)
}
