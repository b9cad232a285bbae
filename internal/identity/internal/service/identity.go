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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/feedsync/internal/identity/internal/domain"
	"github.com/ecodeclub/feedsync/internal/identity/internal/repository/cache"
)

var (
	// ErrActorUnresolved 还没有绑定后端用户，调用方应该直接返回，不要请求后端
	ErrActorUnresolved = errors.New("无法确定当前用户")
	ErrInvalidIdentity = errors.New("用户 ID 不能为空")
)

//go:generate mockgen -source=./identity.go -destination=../../mocks/identity.mock.go -package=identitymocks Service
type Service interface {
	Bind(ctx context.Context, id domain.Identity) error
	Resolve(ctx context.Context, uid int64) (domain.Identity, error)
	Unbind(ctx context.Context, uid int64) error
}

type service struct {
	cache cache.IdentityCache
}

func NewService(c cache.IdentityCache) Service {
	return &service{cache: c}
}

func (s *service) Bind(ctx context.Context, id domain.Identity) error {
	id.UserID = strings.TrimSpace(id.UserID)
	id.DisplayName = strings.TrimSpace(id.DisplayName)
	if id.UserID == "" {
		return ErrInvalidIdentity
	}
	return s.cache.Set(ctx, id)
}

func (s *service) Resolve(ctx context.Context, uid int64) (domain.Identity, error) {
	id, err := s.cache.Get(ctx, uid)
	if errors.Is(err, cache.ErrIdentityNotFound) {
		return domain.Identity{}, ErrActorUnresolved
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("读取身份失败 uid=%d: %w", uid, err)
	}
	if id.UserID == "" {
		return domain.Identity{}, ErrActorUnresolved
	}
	return id, nil
}

func (s *service) Unbind(ctx context.Context, uid int64) error {
	return s.cache.Delete(ctx, uid)
}
